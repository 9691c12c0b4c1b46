package expense

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(deleteExpenseRepository usecase.DeleteExpenseRepository) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository: deleteExpenseRepository,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if err := c.DeleteExpenseRepository.Delete(r.Req.Context(), r.Req.PathValue("expenseId")); err != nil {
		return storeErrorResponse(err, "an error occurred when deleting expense")
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
