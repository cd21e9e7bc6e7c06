package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

// Seed loads a small demo company so the report endpoints return something
// useful on a fresh database. It is a no-op when employees already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, companyName string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM employees").Scan(&count); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}
	slog.Info("seeding demo data", "company", companyName)

	coreStore := core.NewStore(pool)
	timeStore := timesheet.NewStore(pool)
	taskStore := tasks.NewStore(pool)
	goalStore := goals.NewStore(pool)

	for _, dept := range []string{"Engineering", "Sales", "People Operations"} {
		if _, err := coreStore.EnsureDepartment(ctx, dept); err != nil {
			return fmt.Errorf("seed department %s: %w", dept, err)
		}
	}

	seedEmployees := []core.Employee{
		{Name: "Alice Chen", Department: "Engineering", Position: "Senior Engineer", Email: "alice@example.com"},
		{Name: "Nguyễn Văn Đức", Department: "Engineering", Position: "Engineer", Email: "duc@example.com"},
		{Name: "Björn Müller", Department: "Sales", Position: "Account Manager", Email: "bjorn@example.com"},
		{Name: "Priya Patel", Department: "People Operations", Position: "HR Generalist", Email: "priya@example.com"},
	}
	ids := make([]string, 0, len(seedEmployees))
	for _, emp := range seedEmployees {
		id, err := coreStore.CreateEmployee(ctx, emp)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", emp.Name, err)
		}
		ids = append(ids, id)
	}

	monday := startOfWeek(time.Now())
	seedEntries := []struct {
		employee int
		day      int
		hours    float64
		hourType string
		status   string
		notes    string
	}{
		{0, 0, 8, timesheet.HourTypeRegular, timesheet.StatusApproved, ""},
		{0, 1, 9.5, timesheet.HourTypeOvertime, timesheet.StatusApproved, "release prep"},
		{0, 2, 8, timesheet.HourTypeWFH, timesheet.StatusPending, ""},
		{1, 0, 8, timesheet.HourTypeRegular, timesheet.StatusApproved, ""},
		{1, 1, 8, timesheet.HourTypeRegular, timesheet.StatusRejected, "missing clock-out"},
		{1, 5, 4, timesheet.HourTypeWeekend, timesheet.StatusPending, "on-call"},
		{2, 0, 8, timesheet.HourTypeRegular, timesheet.StatusApproved, ""},
		{2, 3, 8, timesheet.HourTypeHoliday, timesheet.StatusApproved, ""},
		{3, 0, 8, timesheet.HourTypeOnLeave, timesheet.StatusApproved, "annual leave"},
	}
	for _, row := range seedEntries {
		_, err := timeStore.Create(ctx, timesheet.Entry{
			EmployeeID: ids[row.employee],
			Date:       monday.AddDate(0, 0, row.day),
			ClockIn:    "09:00",
			ClockOut:   "17:30",
			Hours:      row.hours,
			HourType:   row.hourType,
			Status:     row.status,
			Notes:      row.notes,
		})
		if err != nil {
			return fmt.Errorf("seed time entry: %w", err)
		}
	}

	due := monday.AddDate(0, 0, 10)
	seedTasks := []tasks.Task{
		{EmployeeID: ids[0], Title: "Quarterly architecture review", Priority: tasks.PriorityHigh,
			Status: tasks.StatusCompleted, DueDate: &due, EstimatedHours: 6, ActualHours: 8, QualityRating: 4.5},
		{EmployeeID: ids[0], Title: "Upgrade CI runners", Priority: tasks.PriorityMedium,
			Status: tasks.StatusInProgress, EstimatedHours: 4, ActualHours: 1},
		{EmployeeID: ids[1], Title: "Customer data import", Priority: tasks.PriorityHigh,
			Status: tasks.StatusCompleted, DueDate: &due, EstimatedHours: 10, ActualHours: 9, QualityRating: 5},
		{EmployeeID: ids[2], Title: "Renew key accounts", Priority: tasks.PriorityLow,
			Status: tasks.StatusPending, EstimatedHours: 3},
	}
	for _, task := range seedTasks {
		if _, err := taskStore.Create(ctx, task); err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}

	target := monday.AddDate(0, 2, 0)
	seedGoals := []goals.Goal{
		{EmployeeID: ids[0], Title: "Mentor two junior engineers", Category: "leadership",
			Status: goals.StatusInProgress, Progress: 60, TargetDate: &target},
		{EmployeeID: ids[1], Title: "Finish Kubernetes certification", Category: "learning",
			Status: goals.StatusCompleted, Progress: 80, TargetDate: &target},
		{EmployeeID: ids[2], Title: "Grow pipeline by 20%", Category: "revenue",
			Status: goals.StatusPending, Progress: 0, TargetDate: &target},
	}
	for _, goal := range seedGoals {
		if _, err := goalStore.Create(ctx, goal); err != nil {
			return fmt.Errorf("seed goal: %w", err)
		}
	}

	return nil
}

func startOfWeek(now time.Time) time.Time {
	day := now
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
