package expense_repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
)

type DeleteExpenseMongoRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseMongoRepository(db *mongo.Database) *DeleteExpenseMongoRepository {
	return &DeleteExpenseMongoRepository{
		Db: db,
	}
}

func (d *DeleteExpenseMongoRepository) Delete(ctx context.Context, id string) error {
	collection := d.Db.Collection(collectionName)

	objectId, err := parseId(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	return nil
}
