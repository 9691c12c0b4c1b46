package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// ExpenseControllerBody is shared by create and replace. Amount accepts a JSON number
// or a numeric string.
type ExpenseControllerBody struct {
	Description string      `json:"description" validate:"required,max=255"`
	Amount      json.Number `json:"amount" validate:"required"`
	Currency    string      `json:"currency" validate:"required,oneof=USD EUR GBP JPY CAD AUD INR"`
	Category    string      `json:"category" validate:"required,max=100"`
	Date        string      `json:"date"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// decodeExpense returns the expense described by the body, or the response to send instead.
func decodeExpense(validate *validator.Validate, r presentationProtocols.HttpRequest, now time.Time) (*models.Expense, *presentationProtocols.HttpResponse) {
	if r.Body == nil {
		return nil, helpers.CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}

	var body ExpenseControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, helpers.CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}

	if err := validate.Struct(body); err != nil {
		return nil, helpers.CreateErrorResponse(helpers.GetErrorMessages(validate, err), http.StatusUnprocessableEntity)
	}

	amount, err := decimal.NewFromString(body.Amount.String())
	if err != nil {
		return nil, helpers.CreateErrorResponse("amount must be a decimal number", http.StatusUnprocessableEntity)
	}

	date, err := helpers.ParseExpenseDate(body.Date, now)
	if err != nil {
		return nil, helpers.CreateErrorResponse(err.Error(), http.StatusUnprocessableEntity)
	}

	expense := &models.Expense{
		Description: strings.TrimSpace(body.Description),
		Amount:      amount,
		Currency:    models.Currency(body.Currency),
		Category:    strings.TrimSpace(body.Category),
		Date:        date,
	}
	if err := expense.Validate(); err != nil {
		return nil, helpers.CreateErrorResponse(err.Error(), http.StatusUnprocessableEntity)
	}

	return expense, nil
}

// storeErrorResponse maps a store failure to 404 or 500.
func storeErrorResponse(err error, message string) *presentationProtocols.HttpResponse {
	if errors.Is(err, models.ErrExpenseNotFound) {
		return helpers.CreateErrorResponse("expense not found", http.StatusNotFound)
	}
	return helpers.CreateErrorResponse(message, http.StatusInternalServerError)
}
