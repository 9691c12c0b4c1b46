package expense_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

type UpdateExpenseMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseMongoRepository(db *mongo.Database) *UpdateExpenseMongoRepository {
	return &UpdateExpenseMongoRepository{
		Db: db,
	}
}

// Update replaces every mutable field of the expense and returns the stored result.
func (u *UpdateExpenseMongoRepository) Update(ctx context.Context, id string, expense *models.Expense) (*models.Expense, error) {
	collection := u.Db.Collection(collectionName)

	objectId, err := parseId(id)
	if err != nil {
		return nil, err
	}
	amount, err := encodeAmount(expense.Amount)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"description": expense.Description,
			"amount":      amount,
			"currency":    string(expense.Currency),
			"category":    expense.Category,
			"date":        expense.Date,
			"updated_at":  time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var document expenseDocument
	err = collection.FindOneAndUpdate(ctx, bson.M{"_id": objectId}, update, opts).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}

	updated := document.toModel()
	return &updated, nil
}
