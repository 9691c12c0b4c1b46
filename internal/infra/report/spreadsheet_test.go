package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/statistics"
)

var reportNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func sampleInput(t *testing.T) models.ReportInput {
	t.Helper()
	records := []models.Expense{
		{Description: "Groceries", Amount: decimal.RequireFromString("10"), Currency: models.CurrencyUSD, Category: "Food", Date: time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)},
		{Description: "Bakery", Amount: decimal.RequireFromString("5.25"), Currency: models.CurrencyEUR, Category: "Food", Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
		{Description: "Train ticket", Amount: decimal.RequireFromString("42"), Currency: models.CurrencyGBP, Category: "Travel", Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
		{Description: "Last year", Amount: decimal.RequireFromString("99"), Currency: models.CurrencyUSD, Category: "Old", Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}
	input, err := statistics.BuildReportInput(records, reportNow)
	require.NoError(t, err)
	return input
}

func emptyInput(t *testing.T) models.ReportInput {
	t.Helper()
	input, err := statistics.BuildReportInput(nil, reportNow)
	require.NoError(t, err)
	return input
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rawCell(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	value, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return value
}

func TestSpreadsheetEmptySnapshots(t *testing.T) {
	data, err := NewSpreadsheet().Render(emptyInput(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"Summary", "Weekly", "Monthly", "Yearly", "Expenses"}, f.GetSheetList())
	assert.Equal(t, reportNow.Format(time.RFC3339), rawCell(t, f, "Summary", "B2"))

	for i, kind := range []string{"Weekly", "Monthly", "Yearly"} {
		row := []string{"5", "6", "7"}[i]
		assert.Equal(t, kind, rawCell(t, f, "Summary", "A"+row))
		assert.Equal(t, "0", rawCell(t, f, "Summary", "D"+row))
		assert.Equal(t, "0", rawCell(t, f, "Summary", "E"+row))

		assert.Equal(t, "0", rawCell(t, f, kind, "B4"))
		assert.Equal(t, "0", rawCell(t, f, kind, "B5"))
		assert.Empty(t, rawCell(t, f, kind, "A8"))
	}

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Description", "Category", "Amount", "Currency", "Date"}, rows[0])
}

func TestSpreadsheetContents(t *testing.T) {
	data, err := NewSpreadsheet().Render(sampleInput(t))
	require.NoError(t, err)
	f := openWorkbook(t, data)

	assert.Equal(t, "2026-10-12", rawCell(t, f, "Summary", "B5"))
	assert.Equal(t, "2026-10-19", rawCell(t, f, "Summary", "C5"))
	assert.Equal(t, "1", rawCell(t, f, "Summary", "D5"))
	assert.Equal(t, "2", rawCell(t, f, "Summary", "D6"))
	assert.Equal(t, "15.25", rawCell(t, f, "Summary", "E6"))
	assert.Equal(t, "3", rawCell(t, f, "Summary", "D7"))
	assert.Equal(t, "57.25", rawCell(t, f, "Summary", "E7"))

	assert.Equal(t, "Food", rawCell(t, f, "Yearly", "A8"))
	assert.Equal(t, "15.25", rawCell(t, f, "Yearly", "B8"))
	assert.Equal(t, "Travel", rawCell(t, f, "Yearly", "A9"))
	assert.Equal(t, "EUR", rawCell(t, f, "Yearly", "D8"))
	assert.Equal(t, "GBP", rawCell(t, f, "Yearly", "D9"))
	assert.Equal(t, "USD", rawCell(t, f, "Yearly", "D10"))

	rows, err := f.GetRows("Expenses", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Groceries", "Food", "10", "USD", "2026-10-13"}, rows[1])
	assert.Equal(t, "Train ticket", rows[3][0])
}

func TestSpreadsheetIsDeterministic(t *testing.T) {
	input := sampleInput(t)

	first, err := NewSpreadsheet().Render(input)
	require.NoError(t, err)
	second, err := NewSpreadsheet().Render(input)
	require.NoError(t, err)

	a, b := openWorkbook(t, first), openWorkbook(t, second)
	require.Equal(t, a.GetSheetList(), b.GetSheetList())
	for _, sheet := range a.GetSheetList() {
		rowsA, err := a.GetRows(sheet, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		rowsB, err := b.GetRows(sheet, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, rowsA, rowsB, sheet)
	}

	propsA, err := a.GetDocProps()
	require.NoError(t, err)
	propsB, err := b.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, propsA.Created, propsB.Created)
}

func TestSpreadsheetMissingWindow(t *testing.T) {
	input := emptyInput(t)
	delete(input.Windows, models.WindowYearly)

	_, err := NewSpreadsheet().Render(input)
	require.Error(t, err)

	var missing *models.MissingAggregateError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, models.WindowYearly, missing.Kind)
}

func TestSpreadsheetShowsRecordDayInReportZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	records := []models.Expense{{
		Description: "Ramen",
		Amount:      decimal.RequireFromString("9"),
		Currency:    models.CurrencyJPY,
		Category:    "Food",
		Date:        time.Date(2026, 10, 11, 15, 0, 0, 0, time.UTC),
	}}
	input, err := statistics.BuildReportInput(records, reportNow.In(tokyo))
	require.NoError(t, err)

	data, err := NewSpreadsheet().Render(input)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, "2026-10-12", rawCell(t, f, "Expenses", "E2"))
	assert.Equal(t, "1", rawCell(t, f, "Weekly", "B4"))
}
