package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

// StoreSources adapts the per-domain stores to the Sources interface.
type StoreSources struct {
	timesheets *timesheet.Store
	tasks      *tasks.Store
	goals      *goals.Store
	core       *core.Store
}

func NewStoreSources(db *pgxpool.Pool) *StoreSources {
	return &StoreSources{
		timesheets: timesheet.NewStore(db),
		tasks:      tasks.NewStore(db),
		goals:      goals.NewStore(db),
		core:       core.NewStore(db),
	}
}

func (s *StoreSources) TimeEntries(ctx context.Context, start, end time.Time) ([]timesheet.Entry, error) {
	return s.timesheets.ListRange(ctx, start, end)
}

func (s *StoreSources) Tasks(ctx context.Context) ([]tasks.Task, error) {
	return s.tasks.List(ctx)
}

func (s *StoreSources) Goals(ctx context.Context) ([]goals.Goal, error) {
	return s.goals.List(ctx)
}

func (s *StoreSources) Employees(ctx context.Context) ([]core.Employee, error) {
	return s.core.ListEmployees(ctx)
}
