package statistics

import (
	"strings"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

// UnknownKey groups records whose category or currency is blank, so both breakdowns
// still add up to the total.
const UnknownKey = "UNKNOWN"

// Aggregate sums the records that fall inside window. It never fails: a record with a
// zero date simply does not match, and blank grouping keys land under UnknownKey.
func Aggregate(records []models.Expense, window models.Window) models.Statistics {
	stats := models.NewStatistics()

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		category := strings.TrimSpace(record.Category)
		if category == "" {
			category = UnknownKey
		}
		currency := record.Currency
		if strings.TrimSpace(string(currency)) == "" {
			currency = models.Currency(UnknownKey)
		}

		stats.Count++
		stats.TotalAmount = stats.TotalAmount.Add(record.Amount)
		stats.CategoryTotals[category] = stats.CategoryTotals[category].Add(record.Amount)
		stats.CurrencyTotals[currency] = stats.CurrencyTotals[currency].Add(record.Amount)
	}

	return stats
}

// Filter returns the records inside window, in input order.
func Filter(records []models.Expense, window models.Window) []models.Expense {
	matched := make([]models.Expense, 0)
	for _, record := range records {
		if window.Contains(record.Date) {
			matched = append(matched, record)
		}
	}
	return matched
}

// AggregateAll computes the weekly, monthly and yearly snapshots around now.
func AggregateAll(records []models.Expense, now time.Time) (models.StatisticsSet, error) {
	set := make(models.StatisticsSet, len(models.WindowKinds))
	for _, kind := range models.WindowKinds {
		window, err := ResolveWindow(kind, now)
		if err != nil {
			return nil, err
		}
		set[kind] = models.WindowStatistics{
			Window:     window,
			Statistics: Aggregate(records, window),
		}
	}
	return set, nil
}

// BuildReportInput gathers the complete window triple plus every record matched by at
// least one window. A week can straddle New Year, so the yearly window alone is not enough.
func BuildReportInput(records []models.Expense, now time.Time) (models.ReportInput, error) {
	set, err := AggregateAll(records, now)
	if err != nil {
		return models.ReportInput{}, err
	}

	matched := make([]models.Expense, 0)
	for _, record := range records {
		for _, kind := range models.WindowKinds {
			if set[kind].Window.Contains(record.Date) {
				matched = append(matched, record)
				break
			}
		}
	}

	return models.ReportInput{
		GeneratedAt: now,
		Windows:     set,
		Records:     matched,
	}, nil
}
