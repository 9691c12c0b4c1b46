package expense

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

type CreateExpenseController struct {
	Validate                *validator.Validate
	CreateExpenseRepository usecase.CreateExpenseRepository
	Now                     func() time.Time
}

func NewCreateExpenseController(createExpenseRepository usecase.CreateExpenseRepository, now func() time.Time) *CreateExpenseController {
	return &CreateExpenseController{
		Validate:                newValidator(),
		CreateExpenseRepository: createExpenseRepository,
		Now:                     now,
	}
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expense, response := decodeExpense(c.Validate, r, c.Now())
	if response != nil {
		return response
	}

	created, err := c.CreateExpenseRepository.Create(r.Req.Context(), expense)
	if err != nil {
		logger.L().WithError(err).Error("create expense")
		return helpers.CreateErrorResponse("an error occurred when creating expense", http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}
