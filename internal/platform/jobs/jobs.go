package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Service records one job_runs row per unit of work. Bookkeeping failures
// are logged, never propagated: a job must not fail because its audit row
// could not be written.
type Service struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// Run executes fn, bracketing it with a job_runs insert and completion
// update. The returned error is fn's own.
func (s *Service) Run(ctx context.Context, name string, fn func(context.Context) error) error {
	runID := s.start(ctx, name)
	started := time.Now()

	err := fn(ctx)

	status := StatusCompleted
	details := map[string]any{"duration_ms": time.Since(started).Milliseconds()}
	if err != nil {
		status = StatusFailed
		details["error"] = err.Error()
	}
	s.finish(ctx, runID, status, details)
	return err
}

func (s *Service) start(ctx context.Context, name string) string {
	var runID string
	err := s.db.QueryRow(ctx,
		`INSERT INTO job_runs (job_type, status) VALUES ($1, $2) RETURNING id`,
		name, StatusRunning,
	).Scan(&runID)
	if err != nil {
		slog.Warn("job run insert failed", "job", name, "err", err)
		return ""
	}
	return runID
}

func (s *Service) finish(ctx context.Context, runID, status string, details map[string]any) {
	if runID == "" {
		return
	}
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	_, err = s.db.Exec(ctx,
		`UPDATE job_runs SET status = $1, details_json = $2, completed_at = now() WHERE id = $3`,
		status, payload, runID,
	)
	if err != nil {
		slog.Warn("job run update failed", "run", runID, "err", err)
	}
}

// Run history, newest first.
type Run struct {
	ID          string     `json:"id"`
	JobType     string     `json:"jobType"`
	Status      string     `json:"status"`
	Details     string     `json:"details"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, job_type, status, details_json::text, started_at, completed_at
		   FROM job_runs
		  ORDER BY started_at DESC
		  LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.JobType, &run.Status, &run.Details, &run.StartedAt, &run.CompletedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
