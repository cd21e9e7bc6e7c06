package tasks

import "time"

type Task struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	EstimatedHours float64    `json:"estimatedHours"`
	ActualHours    float64    `json:"actualHours"`
	QualityRating  float64    `json:"qualityRating"`
	SelfAssessment string     `json:"selfAssessment,omitempty"`
	Comments       string     `json:"comments,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted}
}

// HourVariance is positive when a task ran over its estimate.
func (t Task) HourVariance() float64 {
	return t.ActualHours - t.EstimatedHours
}
