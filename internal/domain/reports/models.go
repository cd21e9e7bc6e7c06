package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

const (
	TypeAll         = "all"
	TypeTimeEntries = "time_entries"
	TypeTasks       = "tasks"
	TypeGoals       = "goals"
)

const EmployeeAll = "all"

// Filters is the immutable input captured at export time. Every aggregation
// and encoding function takes it as a parameter; nothing reads ambient state.
type Filters struct {
	StartDate  time.Time
	EndDate    time.Time
	EmployeeID string
	RecordType string
	Locale     string
}

func (f Filters) AllEmployees() bool {
	id := strings.TrimSpace(f.EmployeeID)
	return id == "" || id == EmployeeAll
}

func (f Filters) Includes(recordType string) bool {
	return f.RecordType == "" || f.RecordType == TypeAll || f.RecordType == recordType
}

func (f Filters) SingleType() bool {
	return f.RecordType != "" && f.RecordType != TypeAll
}

func (f Filters) LangCode() string {
	locale := strings.TrimSpace(f.Locale)
	if locale == "" {
		return "EN"
	}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		locale = locale[:idx]
	}
	return strings.ToUpper(locale)
}

func (f Filters) PeriodLabel() string {
	return fmt.Sprintf("%s to %s", f.StartDate.Format("2006-01-02"), f.EndDate.Format("2006-01-02"))
}

// Dataset is rebuilt per export and never persisted.
type Dataset struct {
	TimeEntries []timesheet.Entry
	Tasks       []tasks.Task
	Goals       []goals.Goal
	Employees   []core.Employee
}

func (d Dataset) Empty() bool {
	return len(d.TimeEntries) == 0 && len(d.Tasks) == 0 && len(d.Goals) == 0
}

// EmployeeNames indexes display names by employee ID.
func (d Dataset) EmployeeNames() map[string]string {
	names := make(map[string]string, len(d.Employees))
	for _, emp := range d.Employees {
		names[emp.ID] = emp.Name
	}
	return names
}

func (d Dataset) EmployeeName(employeeID string) string {
	for _, emp := range d.Employees {
		if emp.ID == employeeID {
			return emp.Name
		}
	}
	return employeeID
}

// NormalizeID renders any identifier value the backing store may hand back
// (uuid string, numeric, float from loosely typed JSON) as a comparable
// string. Integral floats lose their fraction so that 7.0 matches "7".
func NormalizeID(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// MatchesEmployee compares identifiers as strings so that numeric and string
// forms of the same id select the same records.
func MatchesEmployee(recordEmployeeID any, selected string) bool {
	return NormalizeID(recordEmployeeID) == strings.TrimSpace(selected)
}
