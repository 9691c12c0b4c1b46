package expense

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesRepository usecase.FindExpensesRepository
}

func NewGetExpensesController(findExpensesRepository usecase.FindExpensesRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesRepository: findExpensesRepository,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenses, err := c.FindExpensesRepository.List(r.Req.Context())
	if err != nil {
		logger.L().WithError(err).Error("list expenses")
		return helpers.CreateErrorResponse("an error occurred when retrieving expenses", http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
