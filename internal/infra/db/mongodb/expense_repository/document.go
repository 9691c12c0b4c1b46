package expense_repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

const collectionName = "expense"

// expenseDocument is the read shape. Amount stays raw because older rows were written
// as strings or doubles before the column switched to Decimal128.
type expenseDocument struct {
	Id          primitive.ObjectID `bson:"_id"`
	Description string             `bson:"description"`
	Amount      bson.RawValue      `bson:"amount"`
	Currency    string             `bson:"currency"`
	Category    string             `bson:"category"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type expenseWrite struct {
	Id          primitive.ObjectID   `bson:"_id"`
	Description string               `bson:"description"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Currency    string               `bson:"currency"`
	Category    string               `bson:"category"`
	Date        time.Time            `bson:"date"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d *expenseDocument) toModel() models.Expense {
	return models.Expense{
		Id:          d.Id.Hex(),
		Description: d.Description,
		Amount:      decodeAmount(d.Amount),
		Currency:    models.Currency(d.Currency),
		Category:    d.Category,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// decodeAmount reads whatever numeric representation is stored; anything unreadable is zero.
func decodeAmount(raw bson.RawValue) decimal.Decimal {
	switch raw.Type {
	case bson.TypeDecimal128:
		if v, ok := raw.Decimal128OK(); ok {
			if d, err := decimal.NewFromString(v.String()); err == nil {
				return d
			}
		}
	case bson.TypeDouble:
		if v, ok := raw.DoubleOK(); ok {
			return decimal.NewFromFloat(v)
		}
	case bson.TypeInt32:
		if v, ok := raw.Int32OK(); ok {
			return decimal.NewFromInt32(v)
		}
	case bson.TypeInt64:
		if v, ok := raw.Int64OK(); ok {
			return decimal.NewFromInt(v)
		}
	case bson.TypeString:
		if v, ok := raw.StringValueOK(); ok {
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

func encodeAmount(amount decimal.Decimal) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(amount.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode amount %s: %w", amount, err)
	}
	return d, nil
}

func parseId(id string) (primitive.ObjectID, error) {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	return objectId, nil
}
