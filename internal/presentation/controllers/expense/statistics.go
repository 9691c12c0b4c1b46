package expense

import (
	"net/http"
	"time"

	"github.com/anuntech/expense-backend/internal/domain/statistics"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/expense-backend/internal/presentation/protocols"
)

// GetStatisticsController aggregates the window named by the path, computed fresh per request.
type GetStatisticsController struct {
	FindExpensesRepository usecase.FindExpensesRepository
	Now                    func() time.Time
}

func NewGetStatisticsController(findExpensesRepository usecase.FindExpensesRepository, now func() time.Time) *GetStatisticsController {
	return &GetStatisticsController{
		FindExpensesRepository: findExpensesRepository,
		Now:                    now,
	}
}

func (c *GetStatisticsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	kind, err := statistics.ParseWindowKind(r.Req.PathValue("window"))
	if err != nil {
		return helpers.CreateErrorResponse(err.Error(), http.StatusNotFound)
	}

	window, err := statistics.ResolveWindow(kind, c.Now())
	if err != nil {
		return helpers.CreateErrorResponse(err.Error(), http.StatusNotFound)
	}

	expenses, err := c.FindExpensesRepository.List(r.Req.Context())
	if err != nil {
		logger.L().WithError(err).Errorf("list expenses for %s statistics", kind)
		return helpers.CreateErrorResponse("an error occurred when computing statistics", http.StatusInternalServerError)
	}

	return helpers.CreateResponse(statistics.Aggregate(expenses, window), http.StatusOK)
}
