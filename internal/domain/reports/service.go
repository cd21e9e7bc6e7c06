package reports

import (
	"context"
	"fmt"
	"time"

	"hrdesk/internal/platform/metrics"
)

const (
	MIMECSV      = "text/csv; charset=utf-8"
	MIMEWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF      = "application/pdf"
)

// Export is a fully rendered download: bytes plus the headers the transport
// layer needs to serve it.
type Export struct {
	Filename string
	MIME     string
	Data     []byte
}

// JobRunner records start/finish bookkeeping around a named unit of work.
type JobRunner interface {
	Run(ctx context.Context, name string, fn func(context.Context) error) error
}

type Service struct {
	src     Sources
	fonts   *FontResolver
	limits  RowLimits
	jobs    JobRunner
	metrics *metrics.Collector
}

func NewService(src Sources, fonts *FontResolver, limits RowLimits, jobs JobRunner, collector *metrics.Collector) *Service {
	return &Service{src: src, fonts: fonts, limits: limits, jobs: jobs, metrics: collector}
}

// SummaryReport is the JSON answer for report previews. The scorecard is only
// present when a single employee is selected.
type SummaryReport struct {
	Period    string     `json:"period"`
	Employee  string     `json:"employee"`
	Language  string     `json:"language"`
	Summary   Summary    `json:"summary"`
	Scorecard *Scorecard `json:"scorecard,omitempty"`
}

func (s *Service) Summary(ctx context.Context, filters Filters) SummaryReport {
	dataset := BuildDataset(ctx, s.src, filters)

	report := SummaryReport{
		Period:   filters.PeriodLabel(),
		Employee: "All Employees",
		Language: filters.LangCode(),
		Summary:  Summarize(dataset),
	}
	if !filters.AllEmployees() {
		report.Employee = dataset.EmployeeName(filters.EmployeeID)
		card := BuildScorecard(dataset, filters.EmployeeID)
		report.Scorecard = &card
	}
	return report
}

func (s *Service) ExportCSV(ctx context.Context, filters Filters) (Export, error) {
	dataset := BuildDataset(ctx, s.src, filters)
	headers, rows := CSVRows(dataset, filters)
	data := EncodeCSV(headers, rows, CSVMeta{
		Language:    filters.LangCode(),
		GeneratedAt: time.Now(),
	})
	s.recordExport(nil)
	return Export{
		Filename: CSVFilename(dataset, filters),
		MIME:     MIMECSV,
		Data:     data,
	}, nil
}

func (s *Service) ExportWorkbook(ctx context.Context, filters Filters) (Export, error) {
	dataset := BuildDataset(ctx, s.src, filters)
	data, err := EncodeWorkbook(dataset, Summarize(dataset), filters)
	s.recordExport(err)
	if err != nil {
		return Export{}, fmt.Errorf("encode workbook: %w", err)
	}
	return Export{
		Filename: WorkbookFilename(dataset, filters),
		MIME:     MIMEWorkbook,
		Data:     data,
	}, nil
}

func (s *Service) ExportPDF(ctx context.Context, filters Filters) (Export, error) {
	dataset := BuildDataset(ctx, s.src, filters)
	font := s.fonts.Resolve(ctx, filters.Locale)
	data, err := EncodePDF(dataset, Summarize(dataset), filters, font, s.limits)
	s.recordExport(err)
	if err != nil {
		return Export{}, fmt.Errorf("encode pdf: %w", err)
	}
	return Export{
		Filename: PDFFilename(dataset, filters),
		MIME:     MIMEPDF,
		Data:     data,
	}, nil
}

// ExportOutcome reports one format's result inside a combined export. A
// failed format never blocks the formats after it.
type ExportOutcome struct {
	Format   string `json:"format"`
	Filename string `json:"filename,omitempty"`
	Size     int    `json:"size,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ExportAll runs the three encoders strictly in sequence, each one awaited
// before the next starts. One job run covers the whole batch.
func (s *Service) ExportAll(ctx context.Context, filters Filters) []ExportOutcome {
	outcomes := make([]ExportOutcome, 0, 3)

	run := func(ctx context.Context) error {
		steps := []struct {
			format string
			fn     func(context.Context, Filters) (Export, error)
		}{
			{"csv", s.ExportCSV},
			{"excel", s.ExportWorkbook},
			{"pdf", s.ExportPDF},
		}
		var firstErr error
		for _, step := range steps {
			export, err := step.fn(ctx, filters)
			if err != nil {
				outcomes = append(outcomes, ExportOutcome{Format: step.format, Error: err.Error()})
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			outcomes = append(outcomes, ExportOutcome{
				Format:   step.format,
				Filename: export.Filename,
				Size:     len(export.Data),
			})
		}
		return firstErr
	}

	if s.jobs != nil {
		_ = s.jobs.Run(ctx, "export_all", run)
	} else {
		_ = run(ctx)
	}
	return outcomes
}

func (s *Service) recordExport(err error) {
	if s.metrics != nil {
		s.metrics.RecordExport(err != nil)
	}
}
