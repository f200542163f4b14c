// Package scraper fetches the upstream catalogue documents and extracts the
// domain model from them. Fetching and extraction are split so extractors stay
// pure functions over raw bytes.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uqpp/uqpp-api/pkg/config"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

// FetchObserver receives timing for each upstream request.
type FetchObserver interface {
	ObserveFetch(source string, success bool, duration time.Duration)
}

// Fetcher issues the outbound requests against the course catalogue and the
// timetable service. It owns one HTTP client; every call takes a context and
// no response is retried.
type Fetcher struct {
	client   *http.Client
	cfg      config.SourceConfig
	observer FetchObserver
	logger   *zap.Logger
}

// NewFetcher constructs a fetcher with its own transport. The observer may be
// nil when metrics are disabled.
func NewFetcher(cfg config.SourceConfig, observer FetchObserver, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		cfg:      cfg,
		observer: observer,
		logger:   logger,
	}
}

// DetailPage fetches the HTML course-detail page. The caller-supplied casing
// of the course code is preserved; the source treats lookups
// case-insensitively.
func (f *Fetcher) DetailPage(ctx context.Context, courseCode string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/course.html?course_code=%s", f.cfg.CourseBaseURL, url.QueryEscape(courseCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "build detail page request")
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	return f.do(req, "detail_page")
}

// Timetable fetches the JSON timetable feed for a course code. The timetable
// service publishes odd and even academic years on separate paths.
func (f *Fetcher) Timetable(ctx context.Context, courseCode string) ([]byte, error) {
	parity := "even"
	if f.cfg.AcademicYear%2 == 1 {
		parity = "odd"
	}
	endpoint := fmt.Sprintf("%s/%s/rest/timetable/subjects", f.cfg.TimetableBaseURL, parity)

	form := url.Values{}
	form.Set("search-term", courseCode)
	form.Set("semester", "ALL")
	form.Set("campus", "ALL")
	form.Set("faculty", "ALL")
	form.Set("type", "ALL")
	for _, day := range []string{"1", "2", "3", "4", "5", "6", "0"} {
		form.Add("days", day)
	}
	form.Set("start-time", "00:00")
	form.Set("end-time", "23:00")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "build timetable request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	return f.do(req, "timetable")
}

// ProgramPage fetches the HTML program requirements page.
func (f *Fetcher) ProgramPage(ctx context.Context, programID string, year int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/requirements/program/%s/%d", f.cfg.CourseBaseURL, url.PathEscape(programID), year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "build program page request")
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	return f.do(req, "program_page")
}

func (f *Fetcher) do(req *http.Request, source string) (body []byte, err error) {
	start := time.Now()
	defer func() {
		if f.observer != nil {
			f.observer.ObserveFetch(source, err == nil, time.Since(start))
		}
	}()

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("upstream request failed", zap.String("source", source), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("fetch %s", source))
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("upstream returned non-200", zap.String("source", source), zap.Int("status", resp.StatusCode))
		return nil, appErrors.New(appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
			fmt.Sprintf("fetch %s: upstream status %d", source, resp.StatusCode))
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("read %s body", source))
	}
	return body, nil
}
