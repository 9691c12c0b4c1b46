package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

const (
	summarySheet  = "Summary"
	expensesSheet = "Expenses"
	dateLayout    = "2006-01-02"
)

// Spreadsheet renders an xlsx workbook: a summary sheet, one sheet per window with the
// category and currency breakdowns side by side, and a sheet listing the matched records.
type Spreadsheet struct{}

func NewSpreadsheet() *Spreadsheet {
	return &Spreadsheet{}
}

func (s *Spreadsheet) Format() models.ReportFormat {
	return models.ReportSpreadsheet
}

func (s *Spreadsheet) Render(input models.ReportInput) ([]byte, error) {
	sections, err := input.Sections()
	if err != nil {
		return nil, err
	}
	generatedAt := normalizeGeneratedAt(input.GeneratedAt)

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	summary := &sheetWriter{f: f, sheet: summarySheet, styles: styles}
	summary.title(1, "Expense Report")
	summary.text(1, 2, "Generated at")
	summary.text(2, 2, generatedAt.Format(time.RFC3339))
	summary.header(4, "Window", "Start", "End (exclusive)", "Count", "Total")
	for i, section := range sections {
		row := 5 + i
		summary.text(1, row, section.Window.Kind.Title())
		summary.text(2, row, section.Window.Start.Format(dateLayout))
		summary.text(3, row, section.Window.End.Format(dateLayout))
		summary.number(4, row, section.Statistics.Count)
		summary.amount(5, row, section.Statistics.TotalAmount)
	}
	summary.widths(map[string]float64{"A": 18, "B": 26, "C": 16, "D": 10, "E": 14})
	if summary.err != nil {
		return nil, summary.err
	}

	for _, section := range sections {
		if err := writeWindowSheet(f, styles, section); err != nil {
			return nil, err
		}
	}

	if err := writeExpensesSheet(f, styles, input.Records, reportLocation(sections)); err != nil {
		return nil, err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:    "Expense Report",
		Creator:  "expense-backend",
		Created:  generatedAt.Format(time.RFC3339),
		Modified: generatedAt.Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("set document properties: %w", err)
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeWindowSheet(f *excelize.File, styles sheetStyles, section models.WindowStatistics) error {
	name := section.Window.Kind.Title()
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create %s sheet: %w", name, err)
	}

	w := &sheetWriter{f: f, sheet: name, styles: styles}
	w.title(1, name+" expenses")
	w.text(1, 2, "Start")
	w.text(2, 2, section.Window.Start.Format(dateLayout))
	w.text(1, 3, "End (exclusive)")
	w.text(2, 3, section.Window.End.Format(dateLayout))
	w.text(1, 4, "Count")
	w.number(2, 4, section.Statistics.Count)
	w.text(1, 5, "Total")
	w.amount(2, 5, section.Statistics.TotalAmount)

	w.headerAt(1, 7, "Category", "Total")
	for i, name := range sortedCategories(section.Statistics.CategoryTotals) {
		w.text(1, 8+i, name)
		w.amount(2, 8+i, section.Statistics.CategoryTotals[name])
	}

	w.headerAt(4, 7, "Currency", "Total")
	for i, code := range sortedCurrencies(section.Statistics.CurrencyTotals) {
		w.text(4, 8+i, string(code))
		w.amount(5, 8+i, section.Statistics.CurrencyTotals[code])
	}

	w.widths(map[string]float64{"A": 24, "B": 14, "C": 4, "D": 12, "E": 14})
	return w.err
}

func writeExpensesSheet(f *excelize.File, styles sheetStyles, records []models.Expense, loc *time.Location) error {
	if _, err := f.NewSheet(expensesSheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", expensesSheet, err)
	}

	w := &sheetWriter{f: f, sheet: expensesSheet, styles: styles}
	w.header(1, "Description", "Category", "Amount", "Currency", "Date")
	for i, record := range records {
		row := 2 + i
		w.text(1, row, record.Description)
		w.text(2, row, record.Category)
		w.amount(3, row, record.Amount)
		w.text(4, row, string(record.Currency))
		w.text(5, row, record.Date.In(loc).Format(dateLayout))
	}
	w.widths(map[string]float64{"A": 40, "B": 20, "C": 14, "D": 10, "E": 12})
	return w.err
}

type sheetStyles struct {
	title  int
	header int
	amount int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var (
		styles sheetStyles
		err    error
	)
	if styles.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return styles, fmt.Errorf("create title style: %w", err)
	}
	if styles.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	}); err != nil {
		return styles, fmt.Errorf("create header style: %w", err)
	}
	if styles.amount, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return styles, fmt.Errorf("create amount style: %w", err)
	}
	return styles, nil
}

// sheetWriter keeps the first error so layout code can stay linear.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles sheetStyles
	err    error
}

func (w *sheetWriter) cell(col, row int) string {
	if w.err != nil {
		return ""
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
	}
	return name
}

func (w *sheetWriter) set(col, row int, value any) {
	name := w.cell(col, row)
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(w.sheet, name, value); err != nil {
		w.err = fmt.Errorf("%s!%s: %w", w.sheet, name, err)
	}
}

func (w *sheetWriter) style(col, row, style int) {
	name := w.cell(col, row)
	if w.err != nil {
		return
	}
	if err := w.f.SetCellStyle(w.sheet, name, name, style); err != nil {
		w.err = fmt.Errorf("%s!%s style: %w", w.sheet, name, err)
	}
}

func (w *sheetWriter) text(col, row int, value string) {
	w.set(col, row, value)
}

func (w *sheetWriter) number(col, row, value int) {
	w.set(col, row, value)
}

func (w *sheetWriter) amount(col, row int, value decimal.Decimal) {
	name := w.cell(col, row)
	if w.err != nil {
		return
	}
	if err := w.f.SetCellFloat(w.sheet, name, value.InexactFloat64(), -1, 64); err != nil {
		w.err = fmt.Errorf("%s!%s: %w", w.sheet, name, err)
		return
	}
	w.style(col, row, w.styles.amount)
}

func (w *sheetWriter) title(row int, value string) {
	w.set(1, row, value)
	w.style(1, row, w.styles.title)
}

func (w *sheetWriter) header(row int, labels ...string) {
	w.headerAt(1, row, labels...)
}

func (w *sheetWriter) headerAt(col, row int, labels ...string) {
	for i, label := range labels {
		w.set(col+i, row, label)
		w.style(col+i, row, w.styles.header)
	}
}

func (w *sheetWriter) widths(cols map[string]float64) {
	for _, col := range []string{"A", "B", "C", "D", "E"} {
		width, ok := cols[col]
		if !ok || w.err != nil {
			continue
		}
		if err := w.f.SetColWidth(w.sheet, col, col, width); err != nil {
			w.err = fmt.Errorf("%s column %s width: %w", w.sheet, col, err)
		}
	}
}
