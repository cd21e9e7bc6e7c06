package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"hrdesk/internal/domain/timesheet"
)

const (
	sheetSummary     = "Summary"
	sheetPerformance = "Performance"
	sheetChartsData  = "Charts Data"
	sheetTimeEntries = "Time Entries"
	sheetTasks       = "Tasks"
	sheetGoals       = "Goals"
)

// goalTierFills maps the five progress bands (0-19 ... 80-100) to fills.
var goalTierFills = []string{"F8CBAD", "FFE699", "FFF2CC", "C6E0B4", "A9D08E"}

// EncodeWorkbook builds the multi-sheet spreadsheet. Any error during sheet
// construction aborts the whole export; partial workbooks are never returned.
func EncodeWorkbook(dataset Dataset, summary Summary, filters Filters) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w := &workbookWriter{file: f}

	if err := w.writeSummarySheet(dataset, summary, filters); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if !filters.AllEmployees() {
		if err := w.writePerformanceSheet(dataset, filters); err != nil {
			return nil, fmt.Errorf("performance sheet: %w", err)
		}
	}
	if err := w.writeChartsDataSheet(summary); err != nil {
		return nil, fmt.Errorf("charts data sheet: %w", err)
	}
	if len(dataset.TimeEntries) > 0 && filters.Includes(TypeTimeEntries) {
		if err := w.writeTimeEntrySheet(dataset); err != nil {
			return nil, fmt.Errorf("time entry sheet: %w", err)
		}
	}
	if len(dataset.Tasks) > 0 && filters.Includes(TypeTasks) {
		if err := w.writeTaskSheet(dataset); err != nil {
			return nil, fmt.Errorf("task sheet: %w", err)
		}
	}
	if len(dataset.Goals) > 0 && filters.Includes(TypeGoals) {
		if err := w.writeGoalSheet(dataset); err != nil {
			return nil, fmt.Errorf("goal sheet: %w", err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(sheetSummary)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type workbookWriter struct {
	file *excelize.File

	titleStyle   int
	headerStyle  int
	labelStyle   int
	altRowStyle  int
	overStyle    int
	underStyle   int
	stylesLoaded bool
}

func (w *workbookWriter) ensureStyles() error {
	if w.stylesLoaded {
		return nil
	}
	var err error
	if w.titleStyle, err = w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "1F4E78"},
	}); err != nil {
		return err
	}
	if w.headerStyle, err = w.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return err
	}
	if w.labelStyle, err = w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return err
	}
	if w.altRowStyle, err = w.file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	}); err != nil {
		return err
	}
	if w.overStyle, err = w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "C00000"},
	}); err != nil {
		return err
	}
	if w.underStyle, err = w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "006100"},
	}); err != nil {
		return err
	}
	w.stylesLoaded = true
	return nil
}

func (w *workbookWriter) newSheet(name string) error {
	if _, err := w.file.NewSheet(name); err != nil {
		return err
	}
	return w.ensureStyles()
}

func (w *workbookWriter) set(sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if text, ok := value.(string); ok {
		value = NeutralizeFormula(text)
	}
	return w.file.SetCellValue(sheet, cell, value)
}

func (w *workbookWriter) styleRange(sheet string, fromCol, fromRow, toCol, toRow, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, from, to, style)
}

type metricRow struct {
	label string
	value float64
}

// writeMetricBlock renders a label/value/bar triple per metric and applies a
// data-bar conditional format across the block's bar column. The bar scale is
// the block's own min/max, not a global one, so bars compare metrics within
// the block only.
func (w *workbookWriter) writeMetricBlock(sheet, title string, startRow int, metrics []metricRow) (int, error) {
	row := startRow
	if err := w.set(sheet, 1, row, title); err != nil {
		return 0, err
	}
	if err := w.styleRange(sheet, 1, row, 1, row, w.titleStyle); err != nil {
		return 0, err
	}
	row++

	firstValueRow := row
	for _, metric := range metrics {
		if err := w.set(sheet, 1, row, metric.label); err != nil {
			return 0, err
		}
		if err := w.styleRange(sheet, 1, row, 1, row, w.labelStyle); err != nil {
			return 0, err
		}
		if err := w.set(sheet, 2, row, metric.value); err != nil {
			return 0, err
		}
		if err := w.set(sheet, 3, row, metric.value); err != nil {
			return 0, err
		}
		row++
	}

	from, err := excelize.CoordinatesToCellName(3, firstValueRow)
	if err != nil {
		return 0, err
	}
	to, err := excelize.CoordinatesToCellName(3, row-1)
	if err != nil {
		return 0, err
	}
	if err := w.file.SetConditionalFormat(sheet, from+":"+to, []excelize.ConditionalFormatOptions{
		{Type: "data_bar", Criteria: "=", MinType: "min", MaxType: "max", BarColor: "#638EC6"},
	}); err != nil {
		return 0, err
	}

	return row + 1, nil
}

func (w *workbookWriter) writeSummarySheet(dataset Dataset, summary Summary, filters Filters) error {
	if err := w.newSheet(sheetSummary); err != nil {
		return err
	}
	sheet := sheetSummary
	if err := w.file.SetColWidth(sheet, "A", "A", 26); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "B", "C", 16); err != nil {
		return err
	}

	if err := w.set(sheet, 1, 1, "HR Report Summary"); err != nil {
		return err
	}
	if err := w.styleRange(sheet, 1, 1, 1, 1, w.titleStyle); err != nil {
		return err
	}
	scope := "All Employees"
	if !filters.AllEmployees() {
		scope = dataset.EmployeeName(filters.EmployeeID)
	}
	meta := [][2]any{
		{"Generated", time.Now().Format("2006-01-02 15:04")},
		{"Period", filters.PeriodLabel()},
		{"Employee", scope},
		{"Language", filters.LangCode()},
	}
	row := 2
	for _, pair := range meta {
		if err := w.set(sheet, 1, row, pair[0]); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, pair[1]); err != nil {
			return err
		}
		row++
	}
	row++

	row, err := w.writeMetricBlock(sheet, "Time Tracking", row, []metricRow{
		{"Total Hours", summary.TotalHours},
		{"Entries", float64(summary.EntryCount)},
		{"Approved", float64(summary.ApprovedEntries)},
		{"Pending", float64(summary.PendingEntries)},
		{"Rejected", float64(summary.RejectedEntries)},
	})
	if err != nil {
		return err
	}

	row, err = w.writeMetricBlock(sheet, "Workload", row, []metricRow{
		{"Total Tasks", float64(summary.TaskCount)},
		{"Completed", float64(summary.CompletedTasks)},
		{"Completion Rate %", float64(summary.TaskCompletionRate)},
		{"Average Quality", summary.AverageQuality},
	})
	if err != nil {
		return err
	}

	_, err = w.writeMetricBlock(sheet, "Goals", row, []metricRow{
		{"Total Goals", float64(summary.GoalCount)},
		{"Completed", float64(summary.CompletedGoals)},
		{"Completion Rate %", float64(summary.GoalCompletionRate)},
		{"Average Progress %", summary.AverageGoalProgress},
	})
	return err
}

func (w *workbookWriter) writePerformanceSheet(dataset Dataset, filters Filters) error {
	if err := w.newSheet(sheetPerformance); err != nil {
		return err
	}
	sheet := sheetPerformance
	if err := w.file.SetColWidth(sheet, "A", "B", 26); err != nil {
		return err
	}

	card := BuildScorecard(dataset, filters.EmployeeID)

	if err := w.set(sheet, 1, 1, "Performance: "+card.EmployeeName); err != nil {
		return err
	}
	if err := w.styleRange(sheet, 1, 1, 1, 1, w.titleStyle); err != nil {
		return err
	}

	rows := [][2]any{
		{"Time Approval Rate %", card.TimeApprovalRate},
		{"Task Completion Rate %", card.TaskCompletionRate},
		{"Goal Average Progress %", card.GoalAverageProgress},
		{"Overall Score", card.OverallScore},
		{"Rating", card.Band},
		{"Stars", strings.Repeat("★", card.Stars) + strings.Repeat("☆", 5-card.Stars)},
	}
	for i, pair := range rows {
		row := i + 3
		if err := w.set(sheet, 1, row, pair[0]); err != nil {
			return err
		}
		if err := w.styleRange(sheet, 1, row, 1, row, w.labelStyle); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, pair[1]); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbookWriter) writeChartsDataSheet(summary Summary) error {
	if err := w.newSheet(sheetChartsData); err != nil {
		return err
	}
	sheet := sheetChartsData
	if err := w.file.SetColWidth(sheet, "A", "B", 20); err != nil {
		return err
	}

	row := 1
	writeBreakdown := func(title, keyHeader, valueHeader string, pairs [][2]any) error {
		if err := w.set(sheet, 1, row, title); err != nil {
			return err
		}
		if err := w.styleRange(sheet, 1, row, 1, row, w.titleStyle); err != nil {
			return err
		}
		row++
		if err := w.set(sheet, 1, row, keyHeader); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, valueHeader); err != nil {
			return err
		}
		if err := w.styleRange(sheet, 1, row, 2, row, w.headerStyle); err != nil {
			return err
		}
		row++
		for _, pair := range pairs {
			if err := w.set(sheet, 1, row, pair[0]); err != nil {
				return err
			}
			if err := w.set(sheet, 2, row, pair[1]); err != nil {
				return err
			}
			row++
		}
		row++
		return nil
	}

	hourPairs := make([][2]any, 0, len(summary.HoursByType))
	for _, hourType := range timesheet.HourTypes() {
		if hours, ok := summary.HoursByType[hourType]; ok {
			hourPairs = append(hourPairs, [2]any{timesheet.HourTypeLabel(hourType), hours})
		}
	}
	if err := writeBreakdown("Hours by Type", "Hour Type", "Hours", hourPairs); err != nil {
		return err
	}

	if err := writeBreakdown("Task Status Distribution", "Status", "Count", sortedCountPairs(summary.TaskStatusCounts)); err != nil {
		return err
	}
	if err := writeBreakdown("Task Priority Distribution", "Priority", "Count", sortedCountPairs(summary.TaskPriorityCounts)); err != nil {
		return err
	}
	return writeBreakdown("Goal Status Distribution", "Status", "Count", sortedCountPairs(summary.GoalStatusCounts))
}

func (w *workbookWriter) writeTimeEntrySheet(dataset Dataset) error {
	if err := w.newSheet(sheetTimeEntries); err != nil {
		return err
	}
	sheet := sheetTimeEntries
	if err := w.file.SetColWidth(sheet, "A", "H", 16); err != nil {
		return err
	}
	if err := w.writeHeaderRow(sheet, TimeEntryHeaders()); err != nil {
		return err
	}

	names := dataset.EmployeeNames()
	for i, entry := range dataset.TimeEntries {
		row := i + 2
		values := []any{
			entry.Date.Format("2006-01-02"),
			displayName(names, entry.EmployeeID),
			entry.ClockIn,
			entry.ClockOut,
			entry.Hours,
			timesheet.HourTypeLabel(entry.HourType),
			entry.Status,
			entry.Notes,
		}
		if err := w.writeDataRow(sheet, row, values, len(values)); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbookWriter) writeTaskSheet(dataset Dataset) error {
	if err := w.newSheet(sheetTasks); err != nil {
		return err
	}
	sheet := sheetTasks
	if err := w.file.SetColWidth(sheet, "A", "I", 16); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	if err := w.writeHeaderRow(sheet, TaskHeaders()); err != nil {
		return err
	}

	names := dataset.EmployeeNames()
	for i, task := range dataset.Tasks {
		row := i + 2
		due := ""
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		values := []any{
			task.Title,
			displayName(names, task.EmployeeID),
			task.Priority,
			task.Status,
			due,
			task.EstimatedHours,
			task.ActualHours,
			task.QualityRating,
			task.Comments,
		}
		if err := w.writeDataRow(sheet, row, values, len(values)); err != nil {
			return err
		}

		// Actual-hours cell flags estimate variance: red over, green under.
		varianceStyle := w.underStyle
		if task.HourVariance() > 0 {
			varianceStyle = w.overStyle
		}
		if err := w.styleRange(sheet, 7, row, 7, row, varianceStyle); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbookWriter) writeGoalSheet(dataset Dataset) error {
	if err := w.newSheet(sheetGoals); err != nil {
		return err
	}
	sheet := sheetGoals
	if err := w.file.SetColWidth(sheet, "A", "G", 16); err != nil {
		return err
	}
	if err := w.file.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	if err := w.writeHeaderRow(sheet, GoalHeaders()); err != nil {
		return err
	}

	names := dataset.EmployeeNames()
	for i, goal := range dataset.Goals {
		row := i + 2
		target := ""
		if goal.TargetDate != nil {
			target = goal.TargetDate.Format("2006-01-02")
		}
		progress := goal.EffectiveProgress()
		values := []any{
			goal.Title,
			displayName(names, goal.EmployeeID),
			goal.Category,
			goal.Status,
			progress,
			target,
			goal.Notes,
		}
		if err := w.writeDataRow(sheet, row, values, len(values)); err != nil {
			return err
		}

		tierStyle, err := w.file.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{goalTierFill(progress)}},
		})
		if err != nil {
			return err
		}
		if err := w.styleRange(sheet, 5, row, 5, row, tierStyle); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbookWriter) writeHeaderRow(sheet string, headers []string) error {
	for col, header := range headers {
		if err := w.set(sheet, col+1, 1, header); err != nil {
			return err
		}
	}
	return w.styleRange(sheet, 1, 1, len(headers), 1, w.headerStyle)
}

func (w *workbookWriter) writeDataRow(sheet string, row int, values []any, width int) error {
	for col, value := range values {
		if err := w.set(sheet, col+1, row, value); err != nil {
			return err
		}
	}
	if row%2 == 0 {
		return nil
	}
	return w.styleRange(sheet, 1, row, width, row, w.altRowStyle)
}

func goalTierFill(progress int) string {
	tier := progress / 20
	if tier >= len(goalTierFills) {
		tier = len(goalTierFills) - 1
	}
	if tier < 0 {
		tier = 0
	}
	return goalTierFills[tier]
}

func sortedCountPairs(counts map[string]int) [][2]any {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	// Deterministic sheet layout regardless of map iteration order.
	sort.Strings(keys)
	pairs := make([][2]any, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, [2]any{key, counts[key]})
	}
	return pairs
}
