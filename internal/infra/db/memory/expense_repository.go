// Package memory keeps expenses in process memory. It backs STORE_BACKEND=memory and
// doubles as the store in gateway tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anuntech/expense-backend/internal/domain/models"
)

type ExpenseRepository struct {
	mu       sync.RWMutex
	order    []string
	expenses map[string]models.Expense
	now      func() time.Time
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		expenses: make(map[string]models.Expense),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Seed inserts expenses as given, keeping their ids and timestamps.
func (r *ExpenseRepository) Seed(expenses ...models.Expense) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, expense := range expenses {
		if expense.Id == "" {
			expense.Id = uuid.NewString()
		}
		if _, exists := r.expenses[expense.Id]; !exists {
			r.order = append(r.order, expense.Id)
		}
		r.expenses[expense.Id] = expense
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved := *expense
	saved.Id = uuid.NewString()
	saved.CreatedAt = r.now()
	saved.UpdatedAt = saved.CreatedAt

	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = append(r.order, saved.Id)
	r.expenses[saved.Id] = saved
	return &saved, nil
}

// List returns a copy of every expense in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	expenses := make([]models.Expense, 0, len(r.order))
	for _, id := range r.order {
		expenses = append(expenses, r.expenses[id])
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindById(ctx context.Context, id string) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	expense, ok := r.expenses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, expense *models.Expense) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.expenses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}

	current.Description = expense.Description
	current.Amount = expense.Amount
	current.Currency = expense.Currency
	current.Category = expense.Category
	current.Date = expense.Date
	current.UpdatedAt = r.now()
	r.expenses[id] = current
	return &current, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	delete(r.expenses, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
