package scraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

const detailPage = `<html><body>
<h1 id="course-title">Software Architecture (CSSE6400)</h1>
<div id="summary-content">
  <p id="course-level">Postgraduate Coursework</p>
  <p id="course-faculty">  Engineering, Architecture and Information Technology  </p>
  <p id="course-school">
    School of Electrical Engineering and Computer Science
  </p>
  <p id="course-units">2</p>
  <p id="course-duration">One Semester</p>
  <p id="course-contact">3 Contact hours</p>
  <p id="course-assessment-methods">Assignment</p>
  <p>Project</p>
  <p>Examination</p>
  <div class="notice">Offered in Semester 1</div>
  <p id="course-coordinator">Richard Thomas (richard.thomas@uq.edu.au)</p>
</div>
</body></html>`

func TestDetailExtractRoundTrip(t *testing.T) {
	course, err := NewDetailExtractor().Extract([]byte(detailPage), "csse6400")
	require.NoError(t, err)

	assert.Equal(t, "CSSE6400", course.Code)
	assert.Equal(t, "Software Architecture", course.Name)
	assert.Equal(t, "Postgraduate Coursework", course.Level)
	assert.Equal(t, "Engineering, Architecture and Information Technology", course.Faculty)
	assert.Equal(t, "School of Electrical Engineering and Computer Science", course.School)
	assert.Equal(t, 2, course.Units)
	assert.Equal(t, "One Semester", course.Duration)
	assert.Equal(t, "3 Contact hours", course.ContactHours)
	assert.Equal(t, "Assignment, Project, Examination", course.AssessmentMethods)
	assert.Equal(t, "Richard Thomas", course.Coordinator)
	assert.Equal(t, "richard.thomas@uq.edu.au", course.CoordinatorEmail)
	assert.Empty(t, course.Offerings)
}

func TestDetailExtractMissingSummaryIsNotFound(t *testing.T) {
	page := `<html><body><h1 id="course-title">Nothing Here (ABCD1234)</h1></body></html>`
	_, err := NewDetailExtractor().Extract([]byte(page), "ABCD1234")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrCourseNotFound))
}

func TestDetailExtractBadTitleIsParseError(t *testing.T) {
	page := strings.Replace(detailPage,
		"Software Architecture (CSSE6400)", "Software Architecture", 1)
	_, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrParse))
}

func TestDetailExtractMissingRequiredFieldIsParseError(t *testing.T) {
	page := strings.Replace(detailPage, `id="course-units"`, `id="other"`, 1)
	_, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrParse))
	assert.Contains(t, err.Error(), "course-units")
}

func TestDetailExtractNonIntegerUnitsIsParseError(t *testing.T) {
	page := strings.Replace(detailPage, `<p id="course-units">2</p>`, `<p id="course-units">two</p>`, 1)
	_, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrParse))
}

func TestDetailExtractCoordinatorIsOptional(t *testing.T) {
	page := strings.Replace(detailPage,
		`<p id="course-coordinator">Richard Thomas (richard.thomas@uq.edu.au)</p>`, "", 1)
	course, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.NoError(t, err)
	assert.Empty(t, course.Coordinator)
	assert.Empty(t, course.CoordinatorEmail)
}

func TestDetailExtractCoordinatorPatternMismatchDefaultsEmpty(t *testing.T) {
	page := strings.Replace(detailPage,
		"Richard Thomas (richard.thomas@uq.edu.au)", "TBA", 1)
	course, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.NoError(t, err)
	assert.Empty(t, course.Coordinator)
	assert.Empty(t, course.CoordinatorEmail)
}

func TestDetailExtractSingleAssessmentParagraph(t *testing.T) {
	page := strings.Replace(detailPage, "<p>Project</p>\n  <p>Examination</p>\n  ", "", 1)
	course, err := NewDetailExtractor().Extract([]byte(page), "CSSE6400")
	require.NoError(t, err)
	assert.Equal(t, "Assignment", course.AssessmentMethods)
}
