package expense

import (
	"net/http"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/statistics"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// GetExpensesByWindowController lists the expenses of the current week, month or year.
type GetExpensesByWindowController struct {
	FindExpensesRepository usecase.FindExpensesRepository
	Kind                   models.WindowKind
	Now                    func() time.Time
}

func NewGetExpensesByWindowController(findExpensesRepository usecase.FindExpensesRepository, kind models.WindowKind, now func() time.Time) *GetExpensesByWindowController {
	return &GetExpensesByWindowController{
		FindExpensesRepository: findExpensesRepository,
		Kind:                   kind,
		Now:                    now,
	}
}

func (c *GetExpensesByWindowController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	window, err := statistics.ResolveWindow(c.Kind, c.Now())
	if err != nil {
		return helpers.CreateErrorResponse(err.Error(), http.StatusNotFound)
	}

	expenses, err := c.FindExpensesRepository.List(r.Req.Context())
	if err != nil {
		logger.L().WithError(err).Errorf("list %s expenses", c.Kind)
		return helpers.CreateErrorResponse("an error occurred when retrieving expenses", http.StatusInternalServerError)
	}

	return helpers.CreateResponse(statistics.Filter(expenses, window), http.StatusOK)
}
