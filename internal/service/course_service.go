package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

type courseSourceFetcher interface {
	DetailPage(ctx context.Context, courseCode string) ([]byte, error)
	Timetable(ctx context.Context, courseCode string) ([]byte, error)
}

type detailExtractor interface {
	Extract(html []byte, courseCode string) (*models.Course, error)
}

type timetableExtractor interface {
	Extract(data []byte, courseCode string) ([]models.Offering, error)
}

type lookupObserver interface {
	ObserveLookup(result string)
}

// CourseService merges the two catalogue sources into one Course aggregate
// per lookup. Each lookup is independent; nothing is cached or shared between
// requests.
type CourseService struct {
	fetcher   courseSourceFetcher
	detail    detailExtractor
	timetable timetableExtractor
	observer  lookupObserver
	logger    *zap.Logger
}

// NewCourseService constructs the course lookup service. The observer may be
// nil when metrics are disabled.
func NewCourseService(fetcher courseSourceFetcher, detail detailExtractor, timetable timetableExtractor, observer lookupObserver, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		fetcher:   fetcher,
		detail:    detail,
		timetable: timetable,
		observer:  observer,
		logger:    logger,
	}
}

// Lookup fetches both sources concurrently and merges them. The detail page
// is authoritative for course-level fields and the timetable feed for
// offerings; neither fetch is canceled when the other fails, both are awaited
// before the merge decision. Caller-supplied casing goes out on the wire (the
// sources are case-insensitive) while the returned Course carries the
// canonical uppercase code.
func (s *CourseService) Lookup(ctx context.Context, courseCode string) (*models.Course, error) {
	var (
		wg sync.WaitGroup

		course    *models.Course
		detailErr error

		offerings    []models.Offering
		timetableErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		html, err := s.fetcher.DetailPage(ctx, courseCode)
		if err != nil {
			detailErr = err
			return
		}
		course, detailErr = s.detail.Extract(html, courseCode)
	}()
	go func() {
		defer wg.Done()
		data, err := s.fetcher.Timetable(ctx, courseCode)
		if err != nil {
			timetableErr = err
			return
		}
		offerings, timetableErr = s.timetable.Extract(data, courseCode)
	}()
	wg.Wait()

	// A missing course wins over whatever the timetable returned: the feed
	// result is discarded without inspection.
	if detailErr != nil {
		s.observe(lookupResult(detailErr))
		return nil, detailErr
	}
	if timetableErr != nil {
		s.observe(lookupResult(timetableErr))
		return nil, timetableErr
	}

	if offerings == nil {
		offerings = []models.Offering{}
	}
	course.Offerings = offerings

	s.observe("ok")
	s.logger.Debug("course lookup merged",
		zap.String("code", course.Code),
		zap.Int("offerings", len(course.Offerings)))
	return course, nil
}

func (s *CourseService) observe(result string) {
	if s.observer != nil {
		s.observer.ObserveLookup(result)
	}
}

func lookupResult(err error) string {
	switch {
	case errors.Is(err, appErrors.ErrCourseNotFound):
		return "not_found"
	case errors.Is(err, appErrors.ErrVocabulary):
		return "vocabulary_error"
	case errors.Is(err, appErrors.ErrParse):
		return "parse_error"
	case errors.Is(err, appErrors.ErrUpstream):
		return "upstream_error"
	default:
		return "error"
	}
}
