package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"

	pageMargin   = 15.0
	contentWidth = 180.0
	lineHeight   = 6.0
	fontFamily   = "Helvetica"
)

var recordColumns = []struct {
	label string
	width float64
	align string
}{
	{"Date", 25, "L"},
	{"Description", 65, "L"},
	{"Category", 40, "L"},
	{"Amount", 30, "R"},
	{"Currency", 20, "C"},
}

// Document renders a printable pdf summary of the three windows.
type Document struct {
	pageSize string
	// uncompressed leaves page streams readable, for inspecting output
	uncompressed bool
}

// NewDocument falls back to A4 for anything that is not Letter.
func NewDocument(pageSize string) *Document {
	if strings.EqualFold(pageSize, PageSizeLetter) {
		return &Document{pageSize: PageSizeLetter}
	}
	return &Document{pageSize: PageSizeA4}
}

func (d *Document) Format() models.ReportFormat {
	return models.ReportDocument
}

func (d *Document) Render(input models.ReportInput) ([]byte, error) {
	sections, err := input.Sections()
	if err != nil {
		return nil, err
	}
	generatedAt := normalizeGeneratedAt(input.GeneratedAt)

	pdf := fpdf.New("P", "mm", d.pageSize, "")
	pdf.SetCompression(!d.uncompressed)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+5)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetTitle("Expense Report", true)
	pdf.SetCreator("expense-backend", true)
	pdf.AliasNbPages("")

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), loc: reportLocation(sections)}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(contentWidth, 10, "Expense Report", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentWidth, lineHeight, "Generated at "+generatedAt.Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, section := range sections {
		w.section(section, input.RecordsIn(section.Window))
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	loc *time.Location
}

func (w *pdfWriter) section(section models.WindowStatistics, records []models.Expense) {
	pdf := w.pdf
	stats := section.Statistics

	pdf.SetFont(fontFamily, "B", 14)
	heading := fmt.Sprintf("%s (%s to %s)",
		section.Window.Kind.Title(),
		section.Window.Start.Format(dateLayout),
		section.Window.End.Format(dateLayout),
	)
	pdf.CellFormat(contentWidth, 8, heading, "B", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	summary := fmt.Sprintf("Total %s across %d expenses", formatAmount(stats.TotalAmount), stats.Count)
	pdf.CellFormat(contentWidth, lineHeight, summary, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	categories := sortedCategories(stats.CategoryTotals)
	rows := make([][2]string, 0, len(categories))
	for _, name := range categories {
		rows = append(rows, [2]string{name, formatAmount(stats.CategoryTotals[name])})
	}
	w.totals("Category", rows)

	currencies := sortedCurrencies(stats.CurrencyTotals)
	rows = rows[:0]
	for _, code := range currencies {
		rows = append(rows, [2]string{string(code), formatAmount(stats.CurrencyTotals[code])})
	}
	w.totals("Currency", rows)

	w.records(records)
	pdf.Ln(6)
}

func (w *pdfWriter) totals(label string, rows [][2]string) {
	pdf := w.pdf
	keyWidth, valueWidth := 120.0, 60.0

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(221, 235, 247)
	pdf.CellFormat(keyWidth, lineHeight, label, "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueWidth, lineHeight, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	if len(rows) == 0 {
		pdf.CellFormat(contentWidth, lineHeight, "No expenses", "1", 1, "C", false, 0, "")
	}
	for _, row := range rows {
		pdf.CellFormat(keyWidth, lineHeight, w.fit(row[0], keyWidth), "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, lineHeight, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func (w *pdfWriter) records(records []models.Expense) {
	if len(records) == 0 {
		return
	}
	pdf := w.pdf

	pdf.SetFont(fontFamily, "B", 9)
	for _, col := range recordColumns {
		pdf.CellFormat(col.width, lineHeight, col.label, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 9)
	for _, record := range records {
		values := []string{
			record.Date.In(w.loc).Format(dateLayout),
			record.Description,
			record.Category,
			formatAmount(record.Amount),
			string(record.Currency),
		}
		for i, col := range recordColumns {
			pdf.CellFormat(col.width, lineHeight, w.fit(values[i], col.width), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

// fit translates text to the core font encoding and cuts it to the column width.
func (w *pdfWriter) fit(text string, width float64) string {
	const ellipsis = "..."
	available := width - 2*w.pdf.GetCellMargin()

	translated := w.tr(text)
	if w.pdf.GetStringWidth(translated) <= available {
		return translated
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := w.tr(strings.TrimRight(string(runes), " ") + ellipsis)
		if w.pdf.GetStringWidth(candidate) <= available {
			return candidate
		}
	}
	return ellipsis
}

func formatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String() + "." + frac
}
