// Package expense_repository stores expenses in the "expense" MongoDB collection.
package expense_repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// ExpenseRepository bundles the per-operation repositories into a full store.
type ExpenseRepository struct {
	*CreateExpenseMongoRepository
	*FindExpensesMongoRepository
	*FindExpenseByIdMongoRepository
	*UpdateExpenseMongoRepository
	*DeleteExpenseMongoRepository
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{
		CreateExpenseMongoRepository:   NewCreateExpenseMongoRepository(db),
		FindExpensesMongoRepository:    NewFindExpensesMongoRepository(db),
		FindExpenseByIdMongoRepository: NewFindExpenseByIdMongoRepository(db),
		UpdateExpenseMongoRepository:   NewUpdateExpenseMongoRepository(db),
		DeleteExpenseMongoRepository:   NewDeleteExpenseMongoRepository(db),
	}
}
