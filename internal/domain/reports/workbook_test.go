package reports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
)

func workbookDataset() Dataset {
	return Dataset{
		TimeEntries: []timesheet.Entry{
			{EmployeeID: "7", Date: day("2026-03-02"), Hours: 8, HourType: timesheet.HourTypeRegular, Status: timesheet.StatusApproved},
			{EmployeeID: "7", Date: day("2026-03-03"), Hours: 2, HourType: timesheet.HourTypeOvertime, Status: timesheet.StatusPending},
		},
		Tasks: []tasks.Task{
			{EmployeeID: "7", Title: "Quarterly review", Priority: tasks.PriorityHigh,
				Status: tasks.StatusCompleted, EstimatedHours: 4, ActualHours: 6, QualityRating: 4},
		},
		Goals: []goals.Goal{
			{EmployeeID: "7", Title: "Finish certification", Status: goals.StatusInProgress, Progress: 55},
		},
		Employees: []core.Employee{{ID: "7", Name: "Alice Chen"}},
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestEncodeWorkbookSheets(t *testing.T) {
	dataset := workbookDataset()
	filters := testFilters()

	data, err := EncodeWorkbook(dataset, Summarize(dataset), filters)
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	sheets := f.GetSheetList()
	want := []string{sheetSummary, sheetChartsData, sheetTimeEntries, sheetTasks, sheetGoals}
	for _, name := range want {
		found := false
		for _, sheet := range sheets {
			if sheet == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing sheet %q in %v", name, sheets)
		}
	}
	for _, sheet := range sheets {
		if sheet == sheetPerformance {
			t.Fatal("performance sheet must not exist for all-employees exports")
		}
	}
}

func TestEncodeWorkbookPerformanceSheet(t *testing.T) {
	dataset := workbookDataset()
	filters := testFilters()
	filters.EmployeeID = "7"

	data, err := EncodeWorkbook(dataset, Summarize(dataset), filters)
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	title, err := f.GetCellValue(sheetPerformance, "A1")
	if err != nil {
		t.Fatalf("read performance title: %v", err)
	}
	if title != "Performance: Alice Chen" {
		t.Fatalf("unexpected performance title %q", title)
	}
}

func TestEncodeWorkbookSummaryValues(t *testing.T) {
	dataset := workbookDataset()

	data, err := EncodeWorkbook(dataset, Summarize(dataset), testFilters())
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	title, err := f.GetCellValue(sheetSummary, "A1")
	if err != nil {
		t.Fatalf("read summary title: %v", err)
	}
	if title != "HR Report Summary" {
		t.Fatalf("unexpected summary title %q", title)
	}

	// Total Hours is the first metric of the Time Tracking block.
	label, err := f.GetCellValue(sheetSummary, "A8")
	if err != nil {
		t.Fatalf("read metric label: %v", err)
	}
	if label != "Total Hours" {
		t.Fatalf("unexpected first metric label %q", label)
	}
	value, err := f.GetCellValue(sheetSummary, "B8")
	if err != nil {
		t.Fatalf("read metric value: %v", err)
	}
	if value != "10" {
		t.Fatalf("expected total hours 10, got %q", value)
	}
}

func TestEncodeWorkbookSummaryDataBars(t *testing.T) {
	dataset := workbookDataset()

	data, err := EncodeWorkbook(dataset, Summarize(dataset), testFilters())
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	formats, err := f.GetConditionalFormats(sheetSummary)
	if err != nil {
		t.Fatalf("read conditional formats: %v", err)
	}
	// One data bar per metric block: Time Tracking, Workload, Goals.
	bars := 0
	for rangeRef, opts := range formats {
		for _, opt := range opts {
			if opt.Type == "dataBar" || opt.Type == "data_bar" {
				bars++
				if !strings.HasPrefix(rangeRef, "C") {
					t.Fatalf("data bar must sit on the bar column, got range %q", rangeRef)
				}
			}
		}
	}
	if bars != 3 {
		t.Fatalf("expected 3 data bar blocks, got %d in %v", bars, formats)
	}
}

func TestEncodeWorkbookNeutralizesFormulas(t *testing.T) {
	dataset := workbookDataset()
	dataset.Tasks[0].Title = "=HYPERLINK(\"http://evil\")"

	data, err := EncodeWorkbook(dataset, Summarize(dataset), testFilters())
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f := openWorkbook(t, data)
	title, err := f.GetCellValue(sheetTasks, "A2")
	if err != nil {
		t.Fatalf("read task title: %v", err)
	}
	if title != "'=HYPERLINK(\"http://evil\")" {
		t.Fatalf("formula cell must be neutralized, got %q", title)
	}
}
