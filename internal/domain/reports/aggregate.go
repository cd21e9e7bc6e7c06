package reports

import (
	"context"
	"log/slog"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

// Sources is the read-only slice of the record store the report pipeline
// consumes. Time entries are range-scoped; tasks and goals are ongoing work
// and are fetched unscoped.
type Sources interface {
	TimeEntries(ctx context.Context, start, end time.Time) ([]timesheet.Entry, error)
	Tasks(ctx context.Context) ([]tasks.Task, error)
	Goals(ctx context.Context) ([]goals.Goal, error)
	Employees(ctx context.Context) ([]core.Employee, error)
}

// BuildDataset fetches each enabled collection independently. A fetch failure
// degrades that collection to empty and is logged; the other fetches still
// run. There are no retries.
func BuildDataset(ctx context.Context, src Sources, filters Filters) Dataset {
	var dataset Dataset

	if filters.Includes(TypeTimeEntries) {
		entries, err := src.TimeEntries(ctx, filters.StartDate, filters.EndDate)
		if err != nil {
			slog.Warn("report time entry fetch failed", "err", err)
		} else {
			dataset.TimeEntries = entries
		}
	}

	if filters.Includes(TypeTasks) {
		items, err := src.Tasks(ctx)
		if err != nil {
			slog.Warn("report task fetch failed", "err", err)
		} else {
			dataset.Tasks = items
		}
	}

	if filters.Includes(TypeGoals) {
		items, err := src.Goals(ctx)
		if err != nil {
			slog.Warn("report goal fetch failed", "err", err)
		} else {
			dataset.Goals = items
		}
	}

	employees, err := src.Employees(ctx)
	if err != nil {
		slog.Warn("report employee fetch failed", "err", err)
	} else {
		dataset.Employees = employees
	}

	if !filters.AllEmployees() {
		dataset = filterByEmployee(dataset, filters.EmployeeID)
	}

	for i := range dataset.TimeEntries {
		dataset.TimeEntries[i].HourType = timesheet.NormalizeHourType(dataset.TimeEntries[i].HourType)
	}

	return dataset
}

func filterByEmployee(dataset Dataset, employeeID string) Dataset {
	filtered := Dataset{Employees: dataset.Employees}
	for _, entry := range dataset.TimeEntries {
		if MatchesEmployee(entry.EmployeeID, employeeID) {
			filtered.TimeEntries = append(filtered.TimeEntries, entry)
		}
	}
	for _, task := range dataset.Tasks {
		if MatchesEmployee(task.EmployeeID, employeeID) {
			filtered.Tasks = append(filtered.Tasks, task)
		}
	}
	for _, goal := range dataset.Goals {
		if MatchesEmployee(goal.EmployeeID, employeeID) {
			filtered.Goals = append(filtered.Goals, goal)
		}
	}
	return filtered
}
