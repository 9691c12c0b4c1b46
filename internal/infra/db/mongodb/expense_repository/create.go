package expense_repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

type CreateExpenseMongoRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseMongoRepository(db *mongo.Database) *CreateExpenseMongoRepository {
	return &CreateExpenseMongoRepository{
		Db: db,
	}
}

func (c *CreateExpenseMongoRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	collection := c.Db.Collection(collectionName)

	amount, err := encodeAmount(expense.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expenseToSave := expenseWrite{
		Id:          primitive.NewObjectID(),
		Description: expense.Description,
		Amount:      amount,
		Currency:    string(expense.Currency),
		Category:    expense.Category,
		Date:        expense.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, expenseToSave); err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	saved := *expense
	saved.Id = expenseToSave.Id.Hex()
	saved.CreatedAt = now
	saved.UpdatedAt = now
	return &saved, nil
}
