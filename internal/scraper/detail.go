package scraper

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

var (
	// "Software Architecture (CSSE6400)"; the parenthesized code is always
	// eight characters.
	titlePattern = regexp.MustCompile(`^(.+) \(.{8}\)$`)
	// "Richard Thomas (richard.thomas@uq.edu.au)"
	coordinatorPattern = regexp.MustCompile(`^(.*?) \(([^()]+@[^()]+)\)$`)
)

// DetailExtractor turns a course-detail page into a Course with no offerings.
type DetailExtractor struct{}

// NewDetailExtractor constructs a detail extractor.
func NewDetailExtractor() *DetailExtractor {
	return &DetailExtractor{}
}

// Extract parses the detail page markup. A page without the summary region
// means the course code does not exist: that returns ErrCourseNotFound, not a
// parse failure. Every summary field except the coordinator is required.
func (e *DetailExtractor) Extract(html []byte, courseCode string) (*models.Course, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "parse detail page markup")
	}

	summary := doc.Find("#summary-content")
	if summary.Length() == 0 {
		return nil, appErrors.ErrCourseNotFound
	}

	title := strings.TrimSpace(doc.Find("#course-title").Text())
	match := titlePattern.FindStringSubmatch(title)
	if match == nil {
		return nil, appErrors.Parsef("course title %q does not match expected pattern", title)
	}

	course := &models.Course{
		Code: strings.ToUpper(courseCode),
		Name: match[1],
	}

	course.Level, err = requiredField(summary, "course-level")
	if err != nil {
		return nil, err
	}
	course.Faculty, err = requiredField(summary, "course-faculty")
	if err != nil {
		return nil, err
	}
	course.School, err = requiredField(summary, "course-school")
	if err != nil {
		return nil, err
	}
	unitsRaw, err := requiredField(summary, "course-units")
	if err != nil {
		return nil, err
	}
	course.Units, err = strconv.Atoi(unitsRaw)
	if err != nil {
		return nil, appErrors.Parsef("course units %q is not an integer", unitsRaw)
	}
	course.Duration, err = requiredField(summary, "course-duration")
	if err != nil {
		return nil, err
	}
	course.ContactHours, err = requiredField(summary, "course-contact")
	if err != nil {
		return nil, err
	}

	course.AssessmentMethods, err = assessmentMethods(summary)
	if err != nil {
		return nil, err
	}

	// Coordinator is the one optional field: absence or an unexpected format
	// degrades to empty strings instead of failing the extraction.
	course.Coordinator, course.CoordinatorEmail = coordinator(summary)

	return course, nil
}

func requiredField(summary *goquery.Selection, id string) (string, error) {
	sel := summary.Find("#" + id)
	if sel.Length() == 0 {
		return "", appErrors.Parsef("summary field %q is missing", id)
	}
	return strings.TrimSpace(sel.First().Text()), nil
}

// assessmentMethods reads the anchor field's own text and then accumulates
// following paragraph siblings until the first non-paragraph sibling. The page
// renders a multi-paragraph list with no delimiter of its own.
func assessmentMethods(summary *goquery.Selection) (string, error) {
	anchor := summary.Find("#course-assessment-methods")
	if anchor.Length() == 0 {
		return "", appErrors.Parsef("summary field %q is missing", "course-assessment-methods")
	}

	parts := []string{}
	if text := strings.TrimSpace(anchor.First().Text()); text != "" {
		parts = append(parts, text)
	}
	for sib := anchor.First().Next(); sib.Length() > 0; sib = sib.Next() {
		if !sib.Is("p") {
			break
		}
		if text := strings.TrimSpace(sib.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ", "), nil
}

func coordinator(summary *goquery.Selection) (name, email string) {
	sel := summary.Find("#course-coordinator")
	if sel.Length() == 0 {
		return "", ""
	}
	match := coordinatorPattern.FindStringSubmatch(strings.TrimSpace(sel.First().Text()))
	if match == nil {
		return "", ""
	}
	return strings.TrimSpace(match[1]), match[2]
}
