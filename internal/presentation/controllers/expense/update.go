package expense

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// UpdateExpenseController replaces every mutable field of an existing expense.
type UpdateExpenseController struct {
	Validate                *validator.Validate
	UpdateExpenseRepository usecase.UpdateExpenseRepository
	Now                     func() time.Time
}

func NewUpdateExpenseController(updateExpenseRepository usecase.UpdateExpenseRepository, now func() time.Time) *UpdateExpenseController {
	return &UpdateExpenseController{
		Validate:                newValidator(),
		UpdateExpenseRepository: updateExpenseRepository,
		Now:                     now,
	}
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expense, response := decodeExpense(c.Validate, r, c.Now())
	if response != nil {
		return response
	}

	updated, err := c.UpdateExpenseRepository.Update(r.Req.Context(), r.Req.PathValue("expenseId"), expense)
	if err != nil {
		return storeErrorResponse(err, "an error occurred when updating expense")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
