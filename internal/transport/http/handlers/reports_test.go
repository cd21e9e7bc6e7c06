package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
	"hrdesk/internal/platform/metrics"
)

type fixtureSources struct{}

func (fixtureSources) TimeEntries(context.Context, time.Time, time.Time) ([]timesheet.Entry, error) {
	return []timesheet.Entry{
		{EmployeeID: "7", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Hours: 3.5,
			HourType: timesheet.HourTypeRegular, Status: timesheet.StatusApproved},
		{EmployeeID: "7", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Hours: 2,
			HourType: timesheet.HourTypeOvertime, Status: timesheet.StatusPending},
	}, nil
}

func (fixtureSources) Tasks(context.Context) ([]tasks.Task, error) {
	return []tasks.Task{
		{EmployeeID: "7", Title: "Ship exporter", Status: tasks.StatusCompleted,
			Priority: tasks.PriorityHigh, QualityRating: 4},
	}, nil
}

func (fixtureSources) Goals(context.Context) ([]goals.Goal, error) {
	return []goals.Goal{
		{EmployeeID: "7", Title: "Certification", Status: goals.StatusCompleted, Progress: 40},
	}, nil
}

func (fixtureSources) Employees(context.Context) ([]core.Employee, error) {
	return []core.Employee{{ID: "7", Name: "Alice Chen"}}, nil
}

func newReportsRouter(t *testing.T) http.Handler {
	t.Helper()
	fonts := reports.NewFontResolver(t.TempDir(), "", 100*time.Millisecond)
	service := reports.NewService(fixtureSources{}, fonts, reports.DefaultRowLimits(), nil, metrics.New())

	r := chi.NewRouter()
	// The jobs service is nil-safe here because no job route is exercised
	// without a database; export/all falls back to running inline.
	NewReportsHandler(service, nil).Register(r)
	return r
}

func TestReportSummaryEndpoint(t *testing.T) {
	router := newReportsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?start_date=2026-03-01&end_date=2026-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool                  `json:"success"`
		Data    reports.SummaryReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.Summary.TotalHoursLabel != "5.5" {
		t.Fatalf("total hours = %q, want 5.5", envelope.Data.Summary.TotalHoursLabel)
	}
	if envelope.Data.Summary.AverageGoalProgress != 100 {
		t.Fatalf("completed goal must report progress 100, got %v", envelope.Data.Summary.AverageGoalProgress)
	}
	if envelope.Data.Scorecard != nil {
		t.Fatal("scorecard must be absent without employee_id")
	}
}

func TestReportSummaryScorecard(t *testing.T) {
	router := newReportsRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/reports/summary?start_date=2026-03-01&end_date=2026-03-31&employee_id=7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Data reports.SummaryReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Scorecard == nil {
		t.Fatal("expected scorecard for single-employee summary")
	}
	if envelope.Data.Employee != "Alice Chen" {
		t.Fatalf("employee = %q", envelope.Data.Employee)
	}
}

func TestCSVExportDownloadHeaders(t *testing.T) {
	router := newReportsRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/reports/export/csv?start_date=2026-03-01&end_date=2026-03-31&lang=vi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != reports.MIMECSV {
		t.Fatalf("content-type = %q", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, "attachment; filename=") {
		t.Fatalf("content-disposition = %q", disposition)
	}
	if !strings.Contains(disposition, "VI.csv") {
		t.Fatalf("filename must carry the language code: %q", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("csv body must start with a BOM")
	}
}

func TestExportAllEndpoint(t *testing.T) {
	router := newReportsRouter(t)

	req := httptest.NewRequest(http.MethodPost,
		"/reports/export/all?start_date=2026-03-01&end_date=2026-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data []reports.ExportOutcome `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(envelope.Data))
	}
	for _, outcome := range envelope.Data {
		if outcome.Error != "" {
			t.Fatalf("format %q failed: %s", outcome.Format, outcome.Error)
		}
	}
}

func TestReportFilterValidation(t *testing.T) {
	router := newReportsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/summary?record_type=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown record_type: status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet,
		"/reports/summary?start_date=2026-03-31&end_date=2026-03-01", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("inverted range: status = %d", rec.Code)
	}
}
