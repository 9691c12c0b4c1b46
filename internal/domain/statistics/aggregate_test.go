package statistics

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

func expense(amount string, currency models.Currency, category string, date time.Time) models.Expense {
	return models.Expense{
		Description: category + " " + amount,
		Amount:      decimal.RequireFromString(amount),
		Currency:    currency,
		Category:    category,
		Date:        date,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestAggregateScenario(t *testing.T) {
	window := models.Window{
		Kind:  models.WindowMonthly,
		Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	records := []models.Expense{
		expense("10", models.CurrencyUSD, "Food", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)),
		expense("5", models.CurrencyEUR, "Food", time.Date(2026, 10, 9, 12, 0, 0, 0, time.UTC)),
		expense("20", models.CurrencyUSD, "Travel", time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)),
	}

	stats := Aggregate(records, window)

	assert.Equal(t, 2, stats.Count)
	assertDecimal(t, "15", stats.TotalAmount)
	require.Len(t, stats.CategoryTotals, 1)
	assertDecimal(t, "15", stats.CategoryTotals["Food"])
	require.Len(t, stats.CurrencyTotals, 2)
	assertDecimal(t, "10", stats.CurrencyTotals[models.CurrencyUSD])
	assertDecimal(t, "5", stats.CurrencyTotals[models.CurrencyEUR])
}

func TestAggregateEmpty(t *testing.T) {
	window, err := ResolveWindow(models.WindowYearly, time.Now())
	require.NoError(t, err)

	stats := Aggregate(nil, window)

	assert.Equal(t, 0, stats.Count)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.NotNil(t, stats.CategoryTotals)
	assert.Empty(t, stats.CategoryTotals)
	assert.NotNil(t, stats.CurrencyTotals)
	assert.Empty(t, stats.CurrencyTotals)
}

func TestAggregateExactDecimals(t *testing.T) {
	window, err := ResolveWindow(models.WindowYearly, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var records []models.Expense
	for i := 0; i < 10; i++ {
		records = append(records, expense("0.1", models.CurrencyGBP, "Snacks", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	}

	stats := Aggregate(records, window)
	assert.Equal(t, "1", stats.TotalAmount.String())
}

func TestAggregateBlankKeysStayPartitioned(t *testing.T) {
	window, err := ResolveWindow(models.WindowYearly, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	records := []models.Expense{
		expense("3", "", "", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		expense("4", models.CurrencyJPY, "Rent", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		{Amount: decimal.NewFromInt(99), Currency: models.CurrencyJPY, Category: "No date"},
	}

	stats := Aggregate(records, window)

	assert.Equal(t, 2, stats.Count)
	assertDecimal(t, "3", stats.CategoryTotals[UnknownKey])
	assertDecimal(t, "3", stats.CurrencyTotals[models.Currency(UnknownKey)])
	assertDecimal(t, "7", stats.TotalAmount)
}

func TestAggregatePartitionsAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Food", "Travel", "Rent", "Books"}
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	var records []models.Expense
	for i := 0; i < 300; i++ {
		amount := fmt.Sprintf("%d.%02d", rng.Intn(500)-50, rng.Intn(100))
		date := now.AddDate(0, 0, -rng.Intn(400))
		records = append(records, expense(
			amount,
			models.Currencies[rng.Intn(len(models.Currencies))],
			categories[rng.Intn(len(categories))],
			date,
		))
	}

	for _, kind := range models.WindowKinds {
		window, err := ResolveWindow(kind, now)
		require.NoError(t, err)

		stats := Aggregate(records, window)

		categorySum := decimal.Zero
		for _, v := range stats.CategoryTotals {
			categorySum = categorySum.Add(v)
		}
		currencySum := decimal.Zero
		for _, v := range stats.CurrencyTotals {
			currencySum = currencySum.Add(v)
		}
		assert.True(t, categorySum.Equal(stats.TotalAmount), "%s category partition", kind)
		assert.True(t, currencySum.Equal(stats.TotalAmount), "%s currency partition", kind)
		assert.Len(t, Filter(records, window), stats.Count)

		again := Aggregate(records, window)
		assert.Equal(t, stats.Count, again.Count)
		assert.True(t, stats.TotalAmount.Equal(again.TotalAmount))
		require.Len(t, again.CategoryTotals, len(stats.CategoryTotals))
		for k, v := range stats.CategoryTotals {
			assert.True(t, v.Equal(again.CategoryTotals[k]))
		}

		shuffled := append([]models.Expense(nil), records...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		reordered := Aggregate(shuffled, window)
		assert.True(t, stats.TotalAmount.Equal(reordered.TotalAmount), "%s order independence", kind)
	}
}

func TestAggregateAllAndBuildReportInput(t *testing.T) {
	now := time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC)
	records := []models.Expense{
		expense("7", models.CurrencyEUR, "Gifts", time.Date(2026, 12, 29, 0, 0, 0, 0, time.UTC)),
		expense("11", models.CurrencyEUR, "Food", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)),
		expense("50", models.CurrencyCAD, "Old", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	set, err := AggregateAll(records, now)
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, 2, set[models.WindowWeekly].Statistics.Count)
	assert.Equal(t, 1, set[models.WindowMonthly].Statistics.Count)
	assert.Equal(t, 1, set[models.WindowYearly].Statistics.Count)

	input, err := BuildReportInput(records, now)
	require.NoError(t, err)
	assert.Equal(t, now, input.GeneratedAt)
	require.Len(t, input.Records, 2)
	assert.Equal(t, "Gifts", input.Records[0].Category)
	assert.Equal(t, "Food", input.Records[1].Category)
}
