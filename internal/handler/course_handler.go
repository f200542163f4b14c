package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uqpp/uqpp-api/internal/models"
	"github.com/uqpp/uqpp-api/internal/service"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/response"
)

type courseLookup interface {
	Lookup(ctx context.Context, courseCode string) (*models.Course, error)
}

// CourseExporter renders a course timetable as a downloadable document.
type CourseExporter interface {
	Render(course *models.Course, format string) (*service.ExportResult, error)
}

// CourseHandler handles the course lookup endpoints.
type CourseHandler struct {
	courses  courseLookup
	exporter CourseExporter
}

// NewCourseHandler constructs a course handler. The exporter may be nil when
// exports are disabled.
func NewCourseHandler(courses courseLookup, exporter CourseExporter) *CourseHandler {
	return &CourseHandler{courses: courses, exporter: exporter}
}

// Get godoc
// @Summary Look up a course by code
// @Description Merges the catalogue detail page and the timetable feed into one course aggregate.
// @Tags Courses
// @Produce json
// @Param code path string true "Course code, e.g. CSSE6400"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /courses/{code} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		response.Error(c, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "course code is required"))
		return
	}

	course, err := h.courses.Lookup(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Export godoc
// @Summary Export a course timetable
// @Tags Courses
// @Produce text/csv
// @Produce application/pdf
// @Param code path string true "Course code"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /courses/{code}/export [get]
func (h *CourseHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.New("EXPORT_DISABLED", http.StatusNotFound, "exports are disabled"))
		return
	}

	code := strings.TrimSpace(c.Param("code"))
	course, err := h.courses.Lookup(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.exporter.Render(course, c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
