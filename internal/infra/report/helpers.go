package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

// normalizeGeneratedAt pins a missing timestamp to the epoch so identical inputs
// always produce identical artifacts.
func normalizeGeneratedAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// reportLocation is the zone the windows were resolved in. Record dates are shown in it
// so a stored UTC instant prints as the day it was bucketed under.
func reportLocation(sections []models.WindowStatistics) *time.Location {
	if len(sections) == 0 {
		return time.UTC
	}
	return sections[0].Window.Start.Location()
}

func sortedCategories(totals map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedCurrencies(totals map[models.Currency]decimal.Decimal) []models.Currency {
	codes := make([]models.Currency, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
