package expense_repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

type FindExpenseByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindExpenseByIdMongoRepository(db *mongo.Database) *FindExpenseByIdMongoRepository {
	return &FindExpenseByIdMongoRepository{
		Db: db,
	}
}

func (f *FindExpenseByIdMongoRepository) FindById(ctx context.Context, id string) (*models.Expense, error) {
	collection := f.Db.Collection(collectionName)

	objectId, err := parseId(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var document expenseDocument
	err = collection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find expense %s: %w", id, err)
	}

	expense := document.toModel()
	return &expense, nil
}
