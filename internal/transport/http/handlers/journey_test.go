package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/db"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/platform/metrics"
)

// journeyPool connects to the database named by TEST_DATABASE_URL and
// prepares the schema plus demo data. The test is skipped without it.
func journeyPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(ctx, pool, "Journey Test Co"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return pool
}

func TestExportJourney(t *testing.T) {
	pool := journeyPool(t)

	fonts := reports.NewFontResolver(t.TempDir(), "", time.Second)
	jobRunner := jobs.New(pool)
	service := reports.NewService(
		reports.NewStoreSources(pool), fonts, reports.DefaultRowLimits(), jobRunner, metrics.New())

	r := chi.NewRouter()
	NewReportsHandler(service, jobRunner).Register(r)
	NewCoreHandler(core.NewStore(pool)).Register(r)
	NewTimesheetHandler(timesheet.NewStore(pool)).Register(r)
	NewTasksHandler(tasks.NewStore(pool)).Register(r)
	NewGoalsHandler(goals.NewStore(pool)).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	for _, path := range []string{
		"/employees",
		"/time-entries",
		"/tasks",
		"/goals",
		"/reports/summary",
		"/reports/export/csv",
		"/reports/export/excel",
		"/reports/export/pdf",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status %d", path, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := http.Post(srv.URL+"/reports/export/all", "application/json", nil)
	if err != nil {
		t.Fatalf("export all: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export all: status %d", resp.StatusCode)
	}

	var envelope struct {
		Data []reports.ExportOutcome `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("expected 3 export outcomes, got %d", len(envelope.Data))
	}

	runs, err := jobRunner.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) == 0 || runs[0].JobType != "export_all" {
		t.Fatalf("expected a recorded export_all run, got %+v", runs)
	}
}
