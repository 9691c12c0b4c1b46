package usecase

import (
	"context"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

type CreateExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
}

// FindExpensesRepository is the ordered full scan the statistics and reports are computed from.
type FindExpensesRepository interface {
	List(ctx context.Context) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	FindById(ctx context.Context, id string) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(ctx context.Context, id string, expense *models.Expense) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository is implemented by every store backend.
type ExpenseRepository interface {
	CreateExpenseRepository
	FindExpensesRepository
	FindExpenseByIdRepository
	UpdateExpenseRepository
	DeleteExpenseRepository
}
