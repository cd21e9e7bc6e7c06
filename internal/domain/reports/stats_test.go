package reports

import (
	"testing"
	"time"

	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarizeTimeEntries(t *testing.T) {
	dataset := Dataset{
		TimeEntries: []timesheet.Entry{
			{EmployeeID: "1", Date: day("2026-03-02"), Hours: 3.5, HourType: timesheet.HourTypeRegular, Status: timesheet.StatusApproved},
			{EmployeeID: "1", Date: day("2026-03-03"), Hours: 2, HourType: timesheet.HourTypeOvertime, Status: timesheet.StatusPending},
		},
	}

	summary := Summarize(dataset)
	if summary.TotalHoursLabel != "5.5" {
		t.Fatalf("expected total hours 5.5, got %q", summary.TotalHoursLabel)
	}
	if summary.ApprovedEntries != 1 || summary.PendingEntries != 1 || summary.RejectedEntries != 0 {
		t.Fatalf("unexpected status counts: %+v", summary)
	}
	if summary.HoursByType[timesheet.HourTypeOvertime] != 2 {
		t.Fatalf("expected 2 overtime hours, got %v", summary.HoursByType)
	}
}

func TestSummarizeQualityIgnoresUnrated(t *testing.T) {
	dataset := Dataset{
		Tasks: []tasks.Task{
			{EmployeeID: "1", Status: tasks.StatusCompleted, QualityRating: 4},
			{EmployeeID: "1", Status: tasks.StatusCompleted, QualityRating: 5},
			{EmployeeID: "1", Status: tasks.StatusPending, QualityRating: 0},
		},
	}

	summary := Summarize(dataset)
	if summary.AverageQuality != 4.5 {
		t.Fatalf("expected average quality 4.5 over rated tasks only, got %v", summary.AverageQuality)
	}
	if summary.TaskCompletionRate != 67 {
		t.Fatalf("expected completion rate 67, got %d", summary.TaskCompletionRate)
	}
}

func TestSummarizeGoalProgressOverride(t *testing.T) {
	dataset := Dataset{
		Goals: []goals.Goal{
			{EmployeeID: "1", Status: goals.StatusCompleted, Progress: 30},
			{EmployeeID: "1", Status: goals.StatusInProgress, Progress: 50},
		},
	}

	summary := Summarize(dataset)
	if summary.AverageGoalProgress != 75 {
		t.Fatalf("expected completed goal to count as 100, average 75, got %v", summary.AverageGoalProgress)
	}
	if summary.GoalCompletionRate != 50 {
		t.Fatalf("expected goal completion rate 50, got %d", summary.GoalCompletionRate)
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	summary := Summarize(Dataset{})
	if summary.TaskCompletionRate != 0 || summary.GoalCompletionRate != 0 {
		t.Fatalf("rates must be 0 on empty collections, got %+v", summary)
	}
	if summary.AverageQuality != 0 || summary.AverageGoalProgress != 0 {
		t.Fatalf("averages must be 0 on empty collections, got %+v", summary)
	}
	if summary.TotalHoursLabel != "0.0" {
		t.Fatalf("expected 0.0 total hours, got %q", summary.TotalHoursLabel)
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := Rate(tc.part, tc.total); got != tc.want {
			t.Fatalf("Rate(%d, %d) = %d, want %d", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestFormatAverage(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{4.5, "4.5"},
		{4.25, "4.3"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatAverage(tc.in); got != tc.want {
			t.Fatalf("FormatAverage(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScoreBand(t *testing.T) {
	cases := []struct {
		score float64
		band  string
		stars int
	}{
		{95, "Outstanding", 5},
		{90, "Outstanding", 5},
		{85, "Exceeds Expectations", 4},
		{70, "Meets Expectations", 3},
		{60, "Developing", 2},
		{59.9, "Needs Improvement", 1},
	}
	for _, tc := range cases {
		band, stars := ScoreBand(tc.score)
		if band != tc.band || stars != tc.stars {
			t.Fatalf("ScoreBand(%v) = %q/%d, want %q/%d", tc.score, band, stars, tc.band, tc.stars)
		}
	}
}

func TestBuildScorecardSingleEmployee(t *testing.T) {
	dataset := Dataset{
		TimeEntries: []timesheet.Entry{
			{EmployeeID: "7", Status: timesheet.StatusApproved},
			{EmployeeID: "7", Status: timesheet.StatusApproved},
			{EmployeeID: "8", Status: timesheet.StatusRejected},
		},
		Tasks: []tasks.Task{
			{EmployeeID: "7", Status: tasks.StatusCompleted},
			{EmployeeID: "7", Status: tasks.StatusPending},
		},
		Goals: []goals.Goal{
			{EmployeeID: "7", Status: goals.StatusInProgress, Progress: 60},
		},
	}

	card := BuildScorecard(dataset, "7")
	if card.TimeApprovalRate != 100 {
		t.Fatalf("expected approval rate 100 for employee 7 only, got %d", card.TimeApprovalRate)
	}
	if card.TaskCompletionRate != 50 {
		t.Fatalf("expected task completion 50, got %d", card.TaskCompletionRate)
	}
	if card.GoalAverageProgress != 60 {
		t.Fatalf("expected goal progress 60, got %v", card.GoalAverageProgress)
	}
	if card.OverallScore != 70 {
		t.Fatalf("expected unweighted mean 70, got %v", card.OverallScore)
	}
	if card.Band != "Meets Expectations" || card.Stars != 3 {
		t.Fatalf("unexpected band %q / stars %d", card.Band, card.Stars)
	}
}
