package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

type stubSources struct {
	entries   []timesheet.Entry
	tasks     []tasks.Task
	goals     []goals.Goal
	employees []core.Employee

	entriesErr error
	tasksErr   error
	goalsErr   error

	gotStart time.Time
	gotEnd   time.Time
}

func (s *stubSources) TimeEntries(_ context.Context, start, end time.Time) ([]timesheet.Entry, error) {
	s.gotStart, s.gotEnd = start, end
	return s.entries, s.entriesErr
}

func (s *stubSources) Tasks(context.Context) ([]tasks.Task, error) {
	return s.tasks, s.tasksErr
}

func (s *stubSources) Goals(context.Context) ([]goals.Goal, error) {
	return s.goals, s.goalsErr
}

func (s *stubSources) Employees(context.Context) ([]core.Employee, error) {
	return s.employees, nil
}

func testFilters() Filters {
	return Filters{
		StartDate:  day("2026-03-01"),
		EndDate:    day("2026-03-31"),
		EmployeeID: EmployeeAll,
		RecordType: TypeAll,
		Locale:     "en",
	}
}

func TestBuildDatasetPartialFailure(t *testing.T) {
	src := &stubSources{
		entries: []timesheet.Entry{{EmployeeID: "1", Hours: 8, HourType: timesheet.HourTypeRegular}},
		goals:   []goals.Goal{{EmployeeID: "1", Status: goals.StatusInProgress, Progress: 40}},
		tasksErr: errors.New("connection reset"),
	}

	dataset := BuildDataset(context.Background(), src, testFilters())
	if len(dataset.TimeEntries) != 1 {
		t.Fatalf("time entries should survive a task fetch failure, got %d", len(dataset.TimeEntries))
	}
	if len(dataset.Tasks) != 0 {
		t.Fatalf("failed fetch must degrade to empty collection, got %d tasks", len(dataset.Tasks))
	}
	if len(dataset.Goals) != 1 {
		t.Fatalf("goals should survive a task fetch failure, got %d", len(dataset.Goals))
	}
}

func TestBuildDatasetPassesDateRange(t *testing.T) {
	src := &stubSources{}
	filters := testFilters()
	BuildDataset(context.Background(), src, filters)

	if !src.gotStart.Equal(filters.StartDate) || !src.gotEnd.Equal(filters.EndDate) {
		t.Fatalf("date range not forwarded: got %v..%v", src.gotStart, src.gotEnd)
	}
}

func TestBuildDatasetRecordTypeGating(t *testing.T) {
	src := &stubSources{
		entries: []timesheet.Entry{{EmployeeID: "1", Hours: 8}},
		tasks:   []tasks.Task{{EmployeeID: "1", Status: tasks.StatusPending}},
		goals:   []goals.Goal{{EmployeeID: "1", Status: goals.StatusPending}},
	}

	filters := testFilters()
	filters.RecordType = TypeTasks
	dataset := BuildDataset(context.Background(), src, filters)

	if len(dataset.TimeEntries) != 0 || len(dataset.Goals) != 0 {
		t.Fatalf("single-type export must not fetch other collections: %+v", dataset)
	}
	if len(dataset.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(dataset.Tasks))
	}
}

func TestBuildDatasetEmployeeFilterToleratesTypes(t *testing.T) {
	src := &stubSources{
		entries: []timesheet.Entry{
			{EmployeeID: "7", Hours: 8},
			{EmployeeID: "8", Hours: 4},
		},
		employees: []core.Employee{{ID: "7", Name: "Alice Chen"}, {ID: "8", Name: "Bob Osei"}},
	}

	filters := testFilters()
	filters.EmployeeID = "7"
	dataset := BuildDataset(context.Background(), src, filters)

	if len(dataset.TimeEntries) != 1 || dataset.TimeEntries[0].EmployeeID != "7" {
		t.Fatalf("expected only employee 7 entries, got %+v", dataset.TimeEntries)
	}
	// Employee list is kept whole so name lookups still work.
	if len(dataset.Employees) != 2 {
		t.Fatalf("employee reference data must not be filtered, got %d", len(dataset.Employees))
	}
}

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"7", "7"},
		{7, "7"},
		{int64(7), "7"},
		{float64(7), "7"},
		{float64(7.5), "7.5"},
		{" 7 ", "7"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := NormalizeID(tc.in); got != tc.want {
			t.Fatalf("NormalizeID(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchesEmployee(t *testing.T) {
	if !MatchesEmployee(7, "7") {
		t.Fatal("numeric id must match its string form")
	}
	if !MatchesEmployee("7", "7") {
		t.Fatal("string ids must match")
	}
	if MatchesEmployee("8", "7") {
		t.Fatal("distinct ids must not match")
	}
}

func TestBuildDatasetNormalizesHourTypes(t *testing.T) {
	src := &stubSources{
		entries: []timesheet.Entry{{EmployeeID: "1", Hours: 8, HourType: "Regular Hours"}},
	}

	dataset := BuildDataset(context.Background(), src, testFilters())
	if dataset.TimeEntries[0].HourType != timesheet.HourTypeRegular {
		t.Fatalf("expected normalized hour type, got %q", dataset.TimeEntries[0].HourType)
	}
}
