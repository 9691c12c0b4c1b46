package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type WindowKind string

const (
	WindowWeekly  WindowKind = "weekly"
	WindowMonthly WindowKind = "monthly"
	WindowYearly  WindowKind = "yearly"
)

// WindowKinds is the complete set of windows a report is built from, in report order.
var WindowKinds = []WindowKind{WindowWeekly, WindowMonthly, WindowYearly}

// Title returns the capitalized kind, used for sheet names and section headings.
func (k WindowKind) Title() string {
	switch k {
	case WindowWeekly:
		return "Weekly"
	case WindowMonthly:
		return "Monthly"
	case WindowYearly:
		return "Yearly"
	}
	return string(k)
}

// Window is the half-open interval [Start, End).
type Window struct {
	Kind  WindowKind `json:"kind"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// Contains reports whether the calendar day of t, read in the window's location,
// falls inside the window. The zone t was decoded in does not matter.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	loc := w.Start.Location()
	local := t.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return !day.Before(w.Start) && day.Before(w.End)
}

// Statistics is the aggregate of every expense matched by a window. Sums are
// literal: amounts in different currencies are added without conversion.
type Statistics struct {
	TotalAmount    decimal.Decimal
	Count          int
	CategoryTotals map[string]decimal.Decimal
	CurrencyTotals map[Currency]decimal.Decimal
}

func NewStatistics() Statistics {
	return Statistics{
		TotalAmount:    decimal.Zero,
		CategoryTotals: map[string]decimal.Decimal{},
		CurrencyTotals: map[Currency]decimal.Decimal{},
	}
}

func (s Statistics) MarshalJSON() ([]byte, error) {
	categories := make(map[string]json.Number, len(s.CategoryTotals))
	for name, amount := range s.CategoryTotals {
		categories[name] = json.Number(amount.String())
	}
	currencies := make(map[Currency]json.Number, len(s.CurrencyTotals))
	for code, amount := range s.CurrencyTotals {
		currencies[code] = json.Number(amount.String())
	}

	return json.Marshal(struct {
		TotalAmount    json.Number              `json:"totalAmount"`
		Count          int                      `json:"count"`
		CategoryTotals map[string]json.Number   `json:"categoryTotals"`
		CurrencyTotals map[Currency]json.Number `json:"currencyTotals"`
	}{
		TotalAmount:    json.Number(s.TotalAmount.String()),
		Count:          s.Count,
		CategoryTotals: categories,
		CurrencyTotals: currencies,
	})
}

type WindowStatistics struct {
	Window     Window     `json:"window"`
	Statistics Statistics `json:"statistics"`
}

// StatisticsSet holds one snapshot per window kind.
type StatisticsSet map[WindowKind]WindowStatistics
