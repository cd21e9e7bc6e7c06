package reports

import (
	"testing"

	"hrdesk/internal/domain/core"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Alice Chen":          "Alice_Chen",
		"  padded  name  ":    "padded_name",
		`bad/\:*?"<>|chars`:   "badchars",
		"=cmd|' /C calc'!A0":  "'=cmd'_C_calc'!A0",
		"tab\tand\nnewline":   "tab_and_newline",
		"trailing space ":     "trailing_space",
		"Nguyễn Văn Đức":      "Nguyễn_Văn_Đức",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExportFilenames(t *testing.T) {
	filters := testFilters()
	dataset := Dataset{}

	if got := CSVFilename(dataset, filters); got != "Time_Report_All_Employees_2026-03-01_to_2026-03-31_EN.csv" {
		t.Fatalf("unexpected csv filename: %q", got)
	}

	filters.RecordType = TypeGoals
	if got := CSVFilename(dataset, filters); got != "Goal_Report_All_Employees_2026-03-01_to_2026-03-31_EN.csv" {
		t.Fatalf("unexpected goal csv filename: %q", got)
	}

	filters.RecordType = TypeAll
	if got := WorkbookFilename(dataset, filters); got != "HR_Report_All_Employees_2026-03-01_to_2026-03-31_EN.xlsx" {
		t.Fatalf("unexpected workbook filename: %q", got)
	}
	if got := PDFFilename(dataset, filters); got != "HR_Report_All_Employees_2026-03-01_to_2026-03-31_EN.pdf" {
		t.Fatalf("unexpected pdf filename: %q", got)
	}
}

func TestExportFilenameSingleEmployee(t *testing.T) {
	filters := testFilters()
	filters.EmployeeID = "7"
	dataset := Dataset{Employees: []core.Employee{{ID: "7", Name: "Alice Chen"}}}

	if got := PDFFilename(dataset, filters); got != "HR_Report_Alice_Chen_2026-03-01_to_2026-03-31_EN.pdf" {
		t.Fatalf("unexpected single-employee filename: %q", got)
	}
}
