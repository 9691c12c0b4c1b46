package expense

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

type GetExpenseByIdController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetExpenseByIdController(findExpenseByIdRepository usecase.FindExpenseByIdRepository) *GetExpenseByIdController {
	return &GetExpenseByIdController{
		FindExpenseByIdRepository: findExpenseByIdRepository,
	}
}

func (c *GetExpenseByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expense, err := c.FindExpenseByIdRepository.FindById(r.Req.Context(), r.Req.PathValue("expenseId"))
	if err != nil {
		return storeErrorResponse(err, "an error occurred when retrieving expense")
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
