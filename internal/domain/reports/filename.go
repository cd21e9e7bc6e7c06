package reports

import (
	"strings"
)

// SanitizeFilename trims, collapses whitespace to underscores, removes
// filesystem-hostile characters and applies the same formula neutralization
// as the cell encoders.
func SanitizeFilename(value string) string {
	value = NeutralizeFormula(strings.TrimSpace(value))

	var b strings.Builder
	b.Grow(len(value))
	lastUnderscore := false
	for _, r := range value {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			lastUnderscore = true
		case strings.ContainsRune(`/\:*?"<>|`, r):
			// dropped outright
		default:
			b.WriteRune(r)
			lastUnderscore = false
		}
	}
	return strings.TrimRight(b.String(), "_")
}

func exportBaseName(prefix string, dataset Dataset, filters Filters) string {
	scope := "All_Employees"
	if !filters.AllEmployees() {
		scope = SanitizeFilename(dataset.EmployeeName(filters.EmployeeID))
	}
	return strings.Join([]string{
		SanitizeFilename(prefix),
		scope,
		filters.StartDate.Format("2006-01-02"),
		"to",
		filters.EndDate.Format("2006-01-02"),
		filters.LangCode(),
	}, "_")
}

func CSVFilename(dataset Dataset, filters Filters) string {
	prefix := "Time_Report"
	switch filters.RecordType {
	case TypeTasks:
		prefix = "Task_Report"
	case TypeGoals:
		prefix = "Goal_Report"
	}
	return exportBaseName(prefix, dataset, filters) + ".csv"
}

func WorkbookFilename(dataset Dataset, filters Filters) string {
	return exportBaseName("HR_Report", dataset, filters) + ".xlsx"
}

func PDFFilename(dataset Dataset, filters Filters) string {
	return exportBaseName("HR_Report", dataset, filters) + ".pdf"
}
