package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RowLimits caps per-type table length in the PDF. The PDF is a readable
// digest; the full dataset always goes out through the CSV export.
type RowLimits struct {
	Combined int
	Single   int
}

func DefaultRowLimits() RowLimits {
	return RowLimits{Combined: 20, Single: 50}
}

func (l RowLimits) For(filters Filters) int {
	if filters.SingleType() {
		return l.Single
	}
	return l.Combined
}

// EncodePDF renders the paginated report. The resolved font decides the text
// path for the whole document: an embedded unicode font when usable,
// otherwise the built-in Helvetica with ASCII-transliterated strings. The two
// never mix within one document.
func EncodePDF(dataset Dataset, summary Summary, filters Filters, font ResolvedFont, limits RowLimits) ([]byte, error) {
	doc := newPDFDoc(font)
	pdf := doc.pdf

	doc.writeCover(dataset, filters)
	doc.writeSummary(summary)

	names := dataset.EmployeeNames()
	rowCap := limits.For(filters)
	if len(dataset.TimeEntries) > 0 && filters.Includes(TypeTimeEntries) {
		doc.writeTable("Time Entries", TimeEntryHeaders(), timeEntryRows(dataset, names), rowCap,
			[]float64{20, 30, 16, 16, 14, 22, 20, 42})
	}
	if len(dataset.Tasks) > 0 && filters.Includes(TypeTasks) {
		doc.writeTable("Tasks", TaskHeaders(), taskRows(dataset, names), rowCap,
			[]float64{40, 26, 16, 20, 20, 14, 14, 14, 16})
	}
	if len(dataset.Goals) > 0 && filters.Includes(TypeGoals) {
		doc.writeTable("Goals", GoalHeaders(), goalRows(dataset, names), rowCap,
			[]float64{44, 28, 24, 20, 18, 22, 24})
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf build failed: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfDoc struct {
	pdf  *gofpdf.Fpdf
	font ResolvedFont
}

func newPDFDoc(font ResolvedFont) *pdfDoc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	doc := &pdfDoc{pdf: pdf, font: font}

	if font.Mode == FontUsable {
		pdf.AddUTF8FontFromBytes(embeddedFontFamily, "", font.Data)
		pdf.AddUTF8FontFromBytes(embeddedFontFamily, "B", font.Data)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		doc.setFont("", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 8, doc.text(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()
	return doc
}

func (d *pdfDoc) family() string {
	if d.font.Mode == FontUsable {
		return embeddedFontFamily
	}
	return "Helvetica"
}

func (d *pdfDoc) setFont(style string, size float64) {
	d.pdf.SetFont(d.family(), style, size)
}

// text is the single choke point all visible strings pass through.
func (d *pdfDoc) text(value string) string {
	if d.font.Mode == FontUsable {
		return value
	}
	return ToASCII(value)
}

func (d *pdfDoc) writeCover(dataset Dataset, filters Filters) {
	pdf := d.pdf

	d.setFont("B", 22)
	pdf.SetTextColor(31, 78, 120)
	pdf.CellFormat(0, 14, d.text("HR Report"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	scope := "All Employees"
	if !filters.AllEmployees() {
		scope = dataset.EmployeeName(filters.EmployeeID)
	}
	lines := [][2]string{
		{"Period", filters.PeriodLabel()},
		{"Employee", scope},
		{"Language", filters.LangCode()},
		{"Generated", time.Now().Format("2006-01-02 15:04")},
	}
	for _, line := range lines {
		d.setFont("B", 10)
		pdf.CellFormat(32, 7, d.text(line[0]), "", 0, "L", false, 0, "")
		d.setFont("", 10)
		pdf.CellFormat(0, 7, d.text(line[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (d *pdfDoc) writeSummary(summary Summary) {
	pdf := d.pdf

	d.setFont("B", 13)
	pdf.CellFormat(0, 9, d.text("Summary"), "", 1, "L", false, 0, "")

	rows := [][2]string{
		{"Total Hours", summary.TotalHoursLabel},
		{"Time Entries", fmt.Sprintf("%d (approved %d, pending %d, rejected %d)",
			summary.EntryCount, summary.ApprovedEntries, summary.PendingEntries, summary.RejectedEntries)},
		{"Tasks", fmt.Sprintf("%d total, %d completed (%d%%)",
			summary.TaskCount, summary.CompletedTasks, summary.TaskCompletionRate)},
		{"Average Quality", summary.AverageQualityLbl},
		{"Goals", fmt.Sprintf("%d total, %d completed (%d%%)",
			summary.GoalCount, summary.CompletedGoals, summary.GoalCompletionRate)},
		{"Average Goal Progress", FormatAverage(summary.AverageGoalProgress) + "%"},
	}

	pdf.SetFillColor(237, 242, 249)
	for i, row := range rows {
		d.setFont("B", 9)
		pdf.CellFormat(56, 7, d.text(row[0]), "1", 0, "L", i%2 == 0, 0, "")
		d.setFont("", 9)
		pdf.CellFormat(134, 7, d.text(row[1]), "1", 1, "L", i%2 == 0, 0, "")
	}
	pdf.Ln(6)
}

func (d *pdfDoc) writeTable(title string, headers []string, rows [][]string, max int, widths []float64) {
	pdf := d.pdf

	if pdf.GetY() > 230 {
		pdf.AddPage()
	}

	d.setFont("B", 13)
	pdf.CellFormat(0, 9, d.text(title), "", 1, "L", false, 0, "")

	d.setFont("B", 8)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, d.text(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(242, 242, 242)

	total := len(rows)
	if total > max {
		rows = rows[:max]
	}

	d.setFont("", 8)
	for i, row := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			d.setFont("B", 8)
			pdf.SetFillColor(68, 114, 196)
			pdf.SetTextColor(255, 255, 255)
			for j, header := range headers {
				pdf.CellFormat(widths[j], 7, d.text(header), "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFillColor(242, 242, 242)
			d.setFont("", 8)
		}
		for j, field := range row {
			pdf.CellFormat(widths[j], 6, d.truncate(field, widths[j]), "1", 0, "L", i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	if total > max {
		d.setFont("", 8)
		pdf.SetTextColor(128, 128, 128)
		note := fmt.Sprintf("Showing first %d of %d rows. Export CSV for the complete data.", max, total)
		pdf.CellFormat(0, 7, d.text(note), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(5)
}

// truncate trims a field to roughly fit its column so long free text does not
// overflow into the next cell.
func (d *pdfDoc) truncate(value string, width float64) string {
	text := d.text(value)
	limit := int(width / 1.6)
	if limit < 4 {
		limit = 4
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-2]) + ".."
}

func timeEntryRows(dataset Dataset, names map[string]string) [][]string {
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
	return rows
}

func taskRows(dataset Dataset, names map[string]string) [][]string {
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
	return rows
}

func goalRows(dataset Dataset, names map[string]string) [][]string {
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
			FormatAverage(float64(goal.EffectiveProgress())) + "%",
			target,
			goal.Notes,
		})
	}
	return rows
}
