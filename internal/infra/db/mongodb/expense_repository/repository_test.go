package expense_repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/domain/usecase"
)

var _ usecase.ExpenseRepository = (*ExpenseRepository)(nil)

func expenseNamespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + collectionName
}

func mustDecimal128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func expenseDoc(id primitive.ObjectID, description string, amount any, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "description", Value: description},
		{Key: "amount", Value: amount},
		{Key: "currency", Value: "USD"},
		{Key: "category", Value: "Food"},
		{Key: "date", Value: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{Key: "created_at", Value: created},
		{Key: "updated_at", Value: created},
	}
}

func TestCreateExpense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		input := &models.Expense{
			Description: "Lunch",
			Amount:      decimal.RequireFromString("12.50"),
			Currency:    models.CurrencyUSD,
			Category:    "Food",
			Date:        time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		}
		saved, err := repo.Create(context.Background(), input)
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(saved.Id)
		assert.NoError(mt, err)
		assert.False(mt, saved.CreatedAt.IsZero())
		assert.Equal(mt, saved.CreatedAt, saved.UpdatedAt)
		assert.True(mt, input.Amount.Equal(saved.Amount))
		assert.Empty(mt, input.Id, "input must not be mutated")
	})

	mt.Run("insert error", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Name:    "WriteError",
			Message: "mock insert failure",
		}))

		_, err := repo.Create(context.Background(), &models.Expense{Amount: decimal.NewFromInt(1)})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "insert expense")
	})
}

func TestListExpenses(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes every stored amount representation", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
		ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}

		mt.AddMockResponses(mtest.CreateCursorResponse(
			0,
			expenseNamespace(mt),
			mtest.FirstBatch,
			expenseDoc(ids[0], "decimal", mustDecimal128(mt.T, "10.25"), created),
			expenseDoc(ids[1], "string", "7.5", created.Add(time.Minute)),
			expenseDoc(ids[2], "double", 2.5, created.Add(2*time.Minute)),
			expenseDoc(ids[3], "int", int32(3), created.Add(3*time.Minute)),
			expenseDoc(ids[4], "garbage", "not a number", created.Add(4*time.Minute)),
		))

		expenses, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, expenses, 5)

		want := []string{"10.25", "7.5", "2.5", "3", "0"}
		for i, expense := range expenses {
			assert.Equal(mt, ids[i].Hex(), expense.Id)
			assert.True(mt, decimal.RequireFromString(want[i]).Equal(expense.Amount), "%s: got %s", expense.Description, expense.Amount)
			assert.Equal(mt, models.CurrencyUSD, expense.Currency)
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, expenseNamespace(mt), mtest.FirstBatch))

		expenses, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, expenses)
		assert.Empty(mt, expenses)
	})

	mt.Run("find error", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "mock find error",
		}))

		_, err := repo.List(context.Background())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "find expenses")
	})
}

func TestFindExpenseById(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, expenseNamespace(mt), mtest.FirstBatch,
			expenseDoc(id, "Coffee", mustDecimal128(mt.T, "3.20"), time.Now().UTC()),
		))

		expense, err := repo.FindById(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Coffee", expense.Description)
		assert.Equal(mt, "3.2", expense.Amount.String())
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, expenseNamespace(mt), mtest.FirstBatch))

		_, err := repo.FindById(context.Background(), primitive.NewObjectID().Hex())
		assert.True(mt, errors.Is(err, models.ErrExpenseNotFound))
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)

		_, err := repo.FindById(context.Background(), "not-an-id")
		assert.True(mt, errors.Is(err, models.ErrExpenseNotFound))
	})
}

func TestUpdateExpense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	update := &models.Expense{
		Description: "Dinner",
		Amount:      decimal.RequireFromString("20"),
		Currency:    models.CurrencyUSD,
		Category:    "Food",
		Date:        time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
	}

	mt.Run("returns the updated document", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: expenseDoc(id, "Dinner", mustDecimal128(mt.T, "20"), time.Now().UTC())},
		))

		updated, err := repo.Update(context.Background(), id.Hex(), update)
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), updated.Id)
		assert.Equal(mt, "Dinner", updated.Description)
		assert.Equal(mt, "20", updated.Amount.String())
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: nil},
		))

		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), update)
		assert.True(mt, errors.Is(err, models.ErrExpenseNotFound))
	})
}

func TestDeleteExpense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.True(mt, errors.Is(err, models.ErrExpenseNotFound))
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewExpenseRepository(mt.DB)

		err := repo.Delete(context.Background(), "xyz")
		assert.True(mt, errors.Is(err, models.ErrExpenseNotFound))
	})
}
