package reports

import (
	"strings"
	"time"
)

const utf8BOM = "\ufeff"

// CSVMeta fills the two comment rows ahead of the header.
type CSVMeta struct {
	Language    string
	GeneratedAt time.Time
}

// EncodeCSV renders one record collection as delimited text: a UTF-8 BOM so
// spreadsheet applications detect multi-script content, two metadata comment
// rows, a blank separator row, the header row, then the data rows. Safe on
// empty input: the header row is still written.
func EncodeCSV(headers []string, rows [][]string, meta CSVMeta) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("# Report Language: " + meta.Language + "\n")
	b.WriteString("# Generated: " + meta.GeneratedAt.Format(time.RFC3339) + "\n")
	b.WriteString("\n")

	writeCSVRow(&b, headers)
	for _, row := range rows {
		writeCSVRow(&b, row)
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(field))
	}
	b.WriteByte('\n')
}

// escapeCSVField neutralizes formula-leading characters, then quotes only
// when the content requires it, doubling interior quotes.
func escapeCSVField(value string) string {
	value = NeutralizeFormula(value)
	if strings.ContainsAny(value, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
	}
	return value
}

// NeutralizeFormula prefixes values that a spreadsheet application would
// interpret as a formula. Applied to every free-text cell, not just filenames.
func NeutralizeFormula(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@':
		return "'" + value
	}
	return value
}

// TimeEntryHeaders and friends define the flat row shape per record type.
func TimeEntryHeaders() []string {
	return []string{"Date", "Employee", "Clock In", "Clock Out", "Hours", "Hour Type", "Status", "Notes"}
}

func TaskHeaders() []string {
	return []string{"Title", "Employee", "Priority", "Status", "Due Date", "Estimated Hours", "Actual Hours", "Quality Rating", "Comments"}
}

func GoalHeaders() []string {
	return []string{"Title", "Employee", "Category", "Status", "Progress", "Target Date", "Notes"}
}

// CSVRows flattens the collection selected by filters. When filters select
// all types, time entries are exported; the combined view belongs to the
// workbook and PDF formats.
func CSVRows(dataset Dataset, filters Filters) ([]string, [][]string) {
	names := dataset.EmployeeNames()
	switch filters.RecordType {
	case TypeTasks:
		rows := make([][]string, 0, len(dataset.Tasks))
		for _, task := range dataset.Tasks {
			due := ""
			if task.DueDate != nil {
				due = task.DueDate.Format("2006-01-02")
			}
			rows = append(rows, []string{
				task.Title,
				displayName(names, task.EmployeeID),
				task.Priority,
				task.Status,
				due,
				FormatHours(task.EstimatedHours),
				FormatHours(task.ActualHours),
				FormatAverage(task.QualityRating),
				task.Comments,
			})
		}
		return TaskHeaders(), rows
	case TypeGoals:
		rows := make([][]string, 0, len(dataset.Goals))
		for _, goal := range dataset.Goals {
			target := ""
			if goal.TargetDate != nil {
				target = goal.TargetDate.Format("2006-01-02")
			}
			rows = append(rows, []string{
				goal.Title,
				displayName(names, goal.EmployeeID),
				goal.Category,
				goal.Status,
				FormatAverage(float64(goal.EffectiveProgress())),
				target,
				goal.Notes,
			})
		}
		return GoalHeaders(), rows
	default:
		rows := make([][]string, 0, len(dataset.TimeEntries))
		for _, entry := range dataset.TimeEntries {
			rows = append(rows, []string{
				entry.Date.Format("2006-01-02"),
				displayName(names, entry.EmployeeID),
				entry.ClockIn,
				entry.ClockOut,
				FormatHours(entry.Hours),
				entry.HourType,
				entry.Status,
				entry.Notes,
			})
		}
		return TimeEntryHeaders(), rows
	}
}

func displayName(names map[string]string, employeeID string) string {
	if name, ok := names[employeeID]; ok {
		return name
	}
	return employeeID
}
