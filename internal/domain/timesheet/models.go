package timesheet

import "time"

type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	ClockIn    string    `json:"clockIn,omitempty"`
	ClockOut   string    `json:"clockOut,omitempty"`
	Hours      float64   `json:"hours"`
	HourType   string    `json:"hourType"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
