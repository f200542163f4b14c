package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uqpp/uqpp-api/internal/models"
	"github.com/uqpp/uqpp-api/pkg/config"
)

type programPageFetcher interface {
	ProgramPage(ctx context.Context, programID string, year int) ([]byte, error)
}

type programExtractor interface {
	Extract(html []byte, programID string) ([]models.ProgramCourse, error)
}

// ProgramPageCache stores fetched program pages between runs.
type ProgramPageCache interface {
	Load(name string) ([]byte, bool, error)
	Store(name string, data []byte) error
}

// ProgramService crawls the program requirements page into a categorized
// course list. The page moves once a year, so the raw HTML is cached on disk
// between runs.
type ProgramService struct {
	fetcher   programPageFetcher
	extractor programExtractor
	cache     ProgramPageCache
	cfg       config.ProgramConfig
	logger    *zap.Logger
}

// NewProgramService constructs the program catalogue service. The cache may
// be nil to disable on-disk caching.
func NewProgramService(fetcher programPageFetcher, extractor programExtractor, cache ProgramPageCache, cfg config.ProgramConfig, logger *zap.Logger) *ProgramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{
		fetcher:   fetcher,
		extractor: extractor,
		cache:     cache,
		cfg:       cfg,
		logger:    logger,
	}
}

// Courses returns the program's categorized course list, fetching the page
// only on a cache miss.
func (s *ProgramService) Courses(ctx context.Context) ([]models.ProgramCourse, error) {
	cacheName := fmt.Sprintf("program-%s-%d.html", s.cfg.ID, s.cfg.Year)

	if s.cache != nil {
		cached, ok, err := s.cache.Load(cacheName)
		if err != nil {
			s.logger.Warn("program page cache read failed", zap.Error(err))
		} else if ok {
			return s.extractor.Extract(cached, s.cfg.ID)
		}
	}

	html, err := s.fetcher.ProgramPage(ctx, s.cfg.ID, s.cfg.Year)
	if err != nil {
		return nil, err
	}

	courses, err := s.extractor.Extract(html, s.cfg.ID)
	if err != nil {
		return nil, err
	}

	// Cache only pages that extracted cleanly, so a transient upstream error
	// page never sticks.
	if s.cache != nil {
		if err := s.cache.Store(cacheName, html); err != nil {
			s.logger.Warn("program page cache write failed", zap.Error(err))
		}
	}
	return courses, nil
}

// CoursesByCode filters the program catalogue down to the requested codes.
// Codes are matched case-insensitively against the canonical uppercase codes.
func (s *ProgramService) CoursesByCode(ctx context.Context, codes []string) ([]models.ProgramCourse, error) {
	all, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		wanted[normalizeCode(code)] = struct{}{}
	}

	selected := make([]models.ProgramCourse, 0, len(codes))
	for _, course := range all {
		if _, ok := wanted[normalizeCode(course.Code)]; ok {
			selected = append(selected, course)
		}
	}
	return selected, nil
}
