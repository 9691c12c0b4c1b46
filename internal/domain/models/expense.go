package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyINR Currency = "INR"
)

// Currencies lists every accepted currency code, in display order.
var Currencies = []Currency{
	CurrencyUSD,
	CurrencyEUR,
	CurrencyGBP,
	CurrencyJPY,
	CurrencyCAD,
	CurrencyAUD,
	CurrencyINR,
}

func (c Currency) IsValid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidCurrency  = errors.New("unsupported currency")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCategory    = errors.New("category is required")
)

type Expense struct {
	Id          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the fields a persisted expense must always carry.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if !e.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// MarshalJSON emits the amount as a JSON number so clients can do arithmetic on it.
func (e Expense) MarshalJSON() ([]byte, error) {
	type expenseAlias Expense
	return json.Marshal(struct {
		expenseAlias
		Amount json.Number `json:"amount"`
	}{
		expenseAlias: expenseAlias(e),
		Amount:       json.Number(e.Amount.String()),
	})
}
