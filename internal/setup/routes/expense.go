package routes

import (
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/setup/adapters"
	"github.com/anuntech/expense-backend/internal/setup/factory"
)

func ExpenseRoutes(server *http.ServeMux, deps *factory.Deps) {
	server.Handle("POST /expenses", adapters.AdaptRoute(factory.MakeCreateExpenseController(deps)))
	server.Handle("GET /expenses", adapters.AdaptRoute(factory.MakeGetExpensesController(deps)))
	server.Handle("GET /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeGetExpenseByIdController(deps)))
	server.Handle("PUT /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeUpdateExpenseController(deps)))
	server.Handle("DELETE /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeDeleteExpenseController(deps)))

	// literal window paths take precedence over {expenseId}
	for _, kind := range models.WindowKinds {
		server.Handle("GET /expenses/"+string(kind), adapters.AdaptRoute(factory.MakeGetExpensesByWindowController(deps, kind)))
	}

	server.Handle("GET /expenses/statistics/{window}", adapters.AdaptRoute(factory.MakeGetStatisticsController(deps)))
}
