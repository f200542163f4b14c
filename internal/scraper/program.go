package scraper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
)

// ProgramExtractor parses the program requirements page into a categorized
// course list. This is the step that assigns CourseCategory; the per-course
// lookup pipeline never does.
type ProgramExtractor struct{}

// NewProgramExtractor constructs a program extractor.
func NewProgramExtractor() *ProgramExtractor {
	return &ProgramExtractor{}
}

// Extract walks the page's part-A category blocks in order. A missing block is
// a parse failure naming the block: the page layout is fixed for a given
// program year.
func (e *ProgramExtractor) Extract(html []byte, programID string) ([]models.ProgramCourse, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "parse program page markup")
	}

	var courses []models.ProgramCourse
	for i, category := range models.Categories() {
		blockID := fmt.Sprintf("part-A.%d", i+1)
		block := doc.Find(fmt.Sprintf("[id=%q]", blockID))
		if block.Length() == 0 {
			return nil, appErrors.Parsef("cannot find course category block %q for program %s", blockID, programID)
		}

		var blockErr error
		block.Find("a").EachWithBreak(func(_ int, entry *goquery.Selection) bool {
			course, err := programCourse(entry, category)
			if err != nil {
				blockErr = err
				return false
			}
			courses = append(courses, *course)
			return true
		})
		if blockErr != nil {
			return nil, blockErr
		}
	}
	return courses, nil
}

func programCourse(entry *goquery.Selection, category models.CourseCategory) (*models.ProgramCourse, error) {
	code := strings.TrimSpace(entry.Find(".curriculum-reference__code").Text())
	if len(code) < 5 {
		return nil, appErrors.Parsef("curriculum entry has malformed course code %q", code)
	}
	// The course level is the first digit of the numeric suffix, e.g.
	// CSSE6400 is a level 6 course.
	level, err := strconv.Atoi(code[4:5])
	if err != nil {
		return nil, appErrors.Parsef("course code %q has non-numeric level digit", code)
	}

	unitsText := strings.TrimSpace(entry.Find(".curriculum-reference__units").Text())
	unitsFields := strings.Fields(unitsText)
	if len(unitsFields) == 0 {
		return nil, appErrors.Parsef("curriculum entry %s has empty units field", code)
	}
	units, err := strconv.Atoi(unitsFields[0])
	if err != nil {
		return nil, appErrors.Parsef("curriculum entry %s has non-numeric units %q", code, unitsText)
	}

	return &models.ProgramCourse{
		Code:     code,
		Name:     strings.TrimSpace(entry.Find(".curriculum-reference__name").Text()),
		Units:    units,
		Level:    level,
		Category: category,
	}, nil
}
