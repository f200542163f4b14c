package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/uqpp/uqpp-api/internal/models"
	appErrors "github.com/uqpp/uqpp-api/pkg/errors"
	"github.com/uqpp/uqpp-api/pkg/export"
)

// ExportFormat selects the export renderer.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportResult is a rendered document ready to be served as an attachment.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService flattens a course's offerings into a tabular document.
type ExportService struct {
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

var timetableHeaders = []string{
	"Offering", "Semester", "Campus", "Mode", "Activity", "Type", "Day",
	"Start", "End", "Location",
}

// Render produces the course timetable in the requested format.
func (s *ExportService) Render(course *models.Course, format string) (*ExportResult, error) {
	dataset := export.Dataset{Headers: timetableHeaders}
	for _, offering := range course.Offerings {
		for _, activity := range offering.Activities {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Offering": offering.Code,
				"Semester": fmt.Sprintf("%d", offering.Semester),
				"Campus":   offering.Campus,
				"Mode":     string(offering.AttendanceMode),
				"Activity": activity.Code,
				"Type":     string(activity.Type),
				"Day":      string(activity.Day),
				"Start":    activity.StartTime.String(),
				"End":      activity.EndTime.String(),
				"Location": activity.Location,
			})
		}
	}

	base := strings.ToLower(course.Code) + "-timetable"
	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return &ExportResult{Filename: base + ".csv", ContentType: "text/csv", Content: content}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, fmt.Sprintf("%s - %s", course.Code, course.Name))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return &ExportResult{Filename: base + ".pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
			fmt.Sprintf("unsupported export format %q", format))
	}
}
