package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uqpp/uqpp-api/internal/models"
	"github.com/uqpp/uqpp-api/pkg/config"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

type programFetcherStub struct {
	body  []byte
	err   error
	calls int
}

func (s *programFetcherStub) ProgramPage(ctx context.Context, programID string, year int) ([]byte, error) {
	s.calls++
	return s.body, s.err
}

type programExtractorStub struct {
	courses []models.ProgramCourse
	err     error
}

func (s *programExtractorStub) Extract(html []byte, programID string) ([]models.ProgramCourse, error) {
	return s.courses, s.err
}

type pageCacheStub struct {
	pages     map[string][]byte
	loadErr   error
	storeErr  error
	stored    []string
	loadCalls int
}

func (s *pageCacheStub) Load(name string) ([]byte, bool, error) {
	s.loadCalls++
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	data, ok := s.pages[name]
	return data, ok, nil
}

func (s *pageCacheStub) Store(name string, data []byte) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	if s.pages == nil {
		s.pages = map[string][]byte{}
	}
	s.pages[name] = data
	s.stored = append(s.stored, name)
	return nil
}

func programCfg() config.ProgramConfig {
	return config.ProgramConfig{ID: "5522", Year: 2024, UseCache: true}
}

func TestProgramServiceCoursesFetchesAndCaches(t *testing.T) {
	fetcher := &programFetcherStub{body: []byte("<html/>")}
	extractor := &programExtractorStub{courses: []models.ProgramCourse{{Code: "CSSE6400"}}}
	cache := &pageCacheStub{}

	svc := NewProgramService(fetcher, extractor, cache, programCfg(), nil)
	courses, err := svc.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, []string{"program-5522-2024.html"}, cache.stored)
}

func TestProgramServiceCoursesUsesCache(t *testing.T) {
	fetcher := &programFetcherStub{}
	extractor := &programExtractorStub{courses: []models.ProgramCourse{{Code: "CSSE6400"}}}
	cache := &pageCacheStub{pages: map[string][]byte{"program-5522-2024.html": []byte("<html/>")}}

	svc := NewProgramService(fetcher, extractor, cache, programCfg(), nil)
	_, err := svc.Courses(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fetcher.calls)
}

func TestProgramServiceExtractErrorIsNotCached(t *testing.T) {
	fetcher := &programFetcherStub{body: []byte("<html/>")}
	extractor := &programExtractorStub{err: appErrors.Parsef("cannot find course category block %q for program %s", "part-A.1", "5522")}
	cache := &pageCacheStub{}

	svc := NewProgramService(fetcher, extractor, cache, programCfg(), nil)
	_, err := svc.Courses(context.Background())
	require.Error(t, err)
	assert.Empty(t, cache.stored)
}

func TestProgramServiceCoursesByCode(t *testing.T) {
	extractor := &programExtractorStub{courses: []models.ProgramCourse{
		{Code: "CSSE6400", Category: models.CategoryFlexibleCore},
		{Code: "COMP7812", Category: models.CategoryResearch},
		{Code: "INFS3208", Category: models.CategoryUndergraduateElective},
	}}
	svc := NewProgramService(&programFetcherStub{body: []byte("<html/>")}, extractor, nil, programCfg(), nil)

	selected, err := svc.CoursesByCode(context.Background(), []string{"csse6400", " comp7812 ", "XXXX0000"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "CSSE6400", selected[0].Code)
	assert.Equal(t, "COMP7812", selected[1].Code)
}
