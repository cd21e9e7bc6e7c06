package goals

import "time"

type Goal struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted}
}
