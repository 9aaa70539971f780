package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	"github.com/Ralph-Dulla-23/CMS/pkg/export"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

// Report formats accepted by the export endpoint.
const (
	ReportFormatCSV = "csv"
	ReportFormatPDF = "pdf"
)

type dayLister interface {
	DayView(ctx context.Context, day models.Date) ([]SessionListItem, error)
}

// ReportService renders a day's resolved sessions into downloadable CSV or
// PDF for staff records.
type ReportService struct {
	schedule dayLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	enabled  bool
	logger   *zap.Logger
}

// NewReportService constructs the service.
func NewReportService(schedule dayLister, enabled bool, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		schedule: schedule,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		enabled:  enabled,
		logger:   logger,
	}
}

// ReportFile is a rendered export ready to stream.
type ReportFile struct {
	Content     []byte
	Filename    string
	ContentType string
}

var reportHeaders = []string{"Student", "Course", "Time", "Type", "Status", "Remarks"}

// ExportDay renders the sessions for one day.
func (s *ReportService) ExportDay(ctx context.Context, day models.Date, format string) (*ReportFile, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled")
	}

	items, err := s.schedule.DayView(ctx, day)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: reportHeaders, Rows: make([]map[string]string, 0, len(items))}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student": item.StudentName,
			"Course":  item.CourseYearSection,
			"Time":    item.Time,
			"Type":    item.Label,
			"Status":  item.Status,
			"Remarks": item.Remarks,
		})
	}

	switch format {
	case ReportFormatCSV, "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &ReportFile{
			Content:     content,
			Filename:    fmt.Sprintf("sessions-%s.csv", day),
			ContentType: "text/csv",
		}, nil
	case ReportFormatPDF:
		title := fmt.Sprintf("Counseling sessions for %s", day)
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &ReportFile{
			Content:     content,
			Filename:    fmt.Sprintf("sessions-%s.pdf", day),
			ContentType: "application/pdf",
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
