package reports

import (
	"math"
	"strconv"

	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

// Summary is a pure derivation of a Dataset.
type Summary struct {
	EntryCount      int                `json:"entryCount"`
	TotalHours      float64            `json:"totalHours"`
	TotalHoursLabel string             `json:"totalHoursLabel"`
	ApprovedEntries int                `json:"approvedEntries"`
	PendingEntries  int                `json:"pendingEntries"`
	RejectedEntries int                `json:"rejectedEntries"`
	HoursByType     map[string]float64 `json:"hoursByType"`

	TaskCount          int            `json:"taskCount"`
	CompletedTasks     int            `json:"completedTasks"`
	TaskCompletionRate int            `json:"taskCompletionRate"`
	AverageQuality     float64        `json:"averageQuality"`
	AverageQualityLbl  string         `json:"averageQualityLabel"`
	TaskStatusCounts   map[string]int `json:"taskStatusCounts"`
	TaskPriorityCounts map[string]int `json:"taskPriorityCounts"`

	GoalCount           int            `json:"goalCount"`
	CompletedGoals      int            `json:"completedGoals"`
	GoalCompletionRate  int            `json:"goalCompletionRate"`
	AverageGoalProgress float64        `json:"averageGoalProgress"`
	GoalStatusCounts    map[string]int `json:"goalStatusCounts"`
}

// Summarize computes the flat stats object the report surfaces render.
func Summarize(dataset Dataset) Summary {
	summary := Summary{
		HoursByType:        map[string]float64{},
		TaskStatusCounts:   map[string]int{},
		TaskPriorityCounts: map[string]int{},
		GoalStatusCounts:   map[string]int{},
	}

	summary.EntryCount = len(dataset.TimeEntries)
	for _, entry := range dataset.TimeEntries {
		summary.TotalHours += entry.Hours
		summary.HoursByType[entry.HourType] += entry.Hours
		switch entry.Status {
		case timesheet.StatusApproved:
			summary.ApprovedEntries++
		case timesheet.StatusRejected:
			summary.RejectedEntries++
		default:
			summary.PendingEntries++
		}
	}
	summary.TotalHoursLabel = FormatHours(summary.TotalHours)

	summary.TaskCount = len(dataset.Tasks)
	ratedTotal := 0.0
	ratedCount := 0
	for _, task := range dataset.Tasks {
		summary.TaskStatusCounts[task.Status]++
		summary.TaskPriorityCounts[task.Priority]++
		if task.Status == tasks.StatusCompleted {
			summary.CompletedTasks++
		}
		if task.QualityRating > 0 {
			ratedTotal += task.QualityRating
			ratedCount++
		}
	}
	summary.TaskCompletionRate = Rate(summary.CompletedTasks, summary.TaskCount)
	if ratedCount > 0 {
		summary.AverageQuality = ratedTotal / float64(ratedCount)
	}
	summary.AverageQualityLbl = FormatAverage(summary.AverageQuality)

	summary.GoalCount = len(dataset.Goals)
	for _, goal := range dataset.Goals {
		summary.GoalStatusCounts[goal.Status]++
		if goal.Status == goals.StatusCompleted {
			summary.CompletedGoals++
		}
	}
	summary.GoalCompletionRate = Rate(summary.CompletedGoals, summary.GoalCount)
	summary.AverageGoalProgress = goals.AverageProgress(dataset.Goals)

	return summary
}

// Scorecard is the per-employee performance breakdown rendered when a single
// employee is selected.
type Scorecard struct {
	EmployeeID          string  `json:"employeeId"`
	EmployeeName        string  `json:"employeeName"`
	TimeApprovalRate    int     `json:"timeApprovalRate"`
	TaskCompletionRate  int     `json:"taskCompletionRate"`
	GoalAverageProgress float64 `json:"goalAverageProgress"`
	OverallScore        float64 `json:"overallScore"`
	Band                string  `json:"band"`
	Stars               int     `json:"stars"`
}

// BuildScorecard averages the three component scores unweighted.
func BuildScorecard(dataset Dataset, employeeID string) Scorecard {
	card := Scorecard{
		EmployeeID:   employeeID,
		EmployeeName: dataset.EmployeeName(employeeID),
	}

	approved, entries := 0, 0
	for _, entry := range dataset.TimeEntries {
		if !MatchesEmployee(entry.EmployeeID, employeeID) {
			continue
		}
		entries++
		if entry.Status == timesheet.StatusApproved {
			approved++
		}
	}
	card.TimeApprovalRate = Rate(approved, entries)

	completed, total := 0, 0
	for _, task := range dataset.Tasks {
		if !MatchesEmployee(task.EmployeeID, employeeID) {
			continue
		}
		total++
		if task.Status == tasks.StatusCompleted {
			completed++
		}
	}
	card.TaskCompletionRate = Rate(completed, total)

	var owned []goals.Goal
	for _, goal := range dataset.Goals {
		if MatchesEmployee(goal.EmployeeID, employeeID) {
			owned = append(owned, goal)
		}
	}
	card.GoalAverageProgress = goals.AverageProgress(owned)

	card.OverallScore = (float64(card.TimeApprovalRate) + float64(card.TaskCompletionRate) + card.GoalAverageProgress) / 3
	card.Band, card.Stars = ScoreBand(card.OverallScore)
	return card
}

// ScoreBand maps an overall score onto a star rating.
func ScoreBand(score float64) (string, int) {
	switch {
	case score >= 90:
		return "Outstanding", 5
	case score >= 80:
		return "Exceeds Expectations", 4
	case score >= 70:
		return "Meets Expectations", 3
	case score >= 60:
		return "Developing", 2
	default:
		return "Needs Improvement", 1
	}
}

// Rate is a whole-number percentage, 0 when the denominator is 0.
func Rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FormatHours renders an hour total with one decimal place.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 1, 64)
}

// FormatAverage renders a whole number when the value is integral, otherwise
// one decimal place.
func FormatAverage(value float64) string {
	rounded := math.Round(value*10) / 10
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
