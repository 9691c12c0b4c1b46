package factory

import (
	"github.com/anuntech/expense-backend/internal/domain/models"
	controllers "github.com/anuntech/expense-backend/internal/presentation/controllers/expense"
)

func MakeCreateExpenseController(deps *Deps) *controllers.CreateExpenseController {
	return controllers.NewCreateExpenseController(deps.Expenses, deps.Now)
}

func MakeGetExpensesController(deps *Deps) *controllers.GetExpensesController {
	return controllers.NewGetExpensesController(deps.Expenses)
}

func MakeGetExpenseByIdController(deps *Deps) *controllers.GetExpenseByIdController {
	return controllers.NewGetExpenseByIdController(deps.Expenses)
}

func MakeUpdateExpenseController(deps *Deps) *controllers.UpdateExpenseController {
	return controllers.NewUpdateExpenseController(deps.Expenses, deps.Now)
}

func MakeDeleteExpenseController(deps *Deps) *controllers.DeleteExpenseController {
	return controllers.NewDeleteExpenseController(deps.Expenses)
}

func MakeGetExpensesByWindowController(deps *Deps, kind models.WindowKind) *controllers.GetExpensesByWindowController {
	return controllers.NewGetExpensesByWindowController(deps.Expenses, kind, deps.Now)
}

func MakeGetStatisticsController(deps *Deps) *controllers.GetStatisticsController {
	return controllers.NewGetStatisticsController(deps.Expenses, deps.Now)
}
