package expense_repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

type FindExpensesMongoRepository struct {
	Db *mongo.Database
}

func NewFindExpensesMongoRepository(db *mongo.Database) *FindExpensesMongoRepository {
	return &FindExpensesMongoRepository{
		Db: db,
	}
}

// List returns every expense in insertion order.
func (f *FindExpensesMongoRepository) List(ctx context.Context) ([]models.Expense, error) {
	collection := f.Db.Collection(collectionName)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var documents []expenseDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}

	expenses := make([]models.Expense, 0, len(documents))
	for i := range documents {
		expenses = append(expenses, documents[i].toModel())
	}
	return expenses, nil
}
