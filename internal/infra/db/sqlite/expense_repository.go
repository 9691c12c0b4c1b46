// Package sqlite is the single-file expense store, for deployments without MongoDB.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anuntech/expense-backend/internal/domain/models"
	"github.com/anuntech/expense-backend/internal/logger"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(dbPath string) (*ExpenseRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	logger.L().Infof("SQLite expense store ready at %s", dbPath)

	return &ExpenseRepository{db: db}, nil
}

func (r *ExpenseRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	now := time.Now().UTC()
	saved := *expense
	saved.Id = uuid.NewString()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount, currency, category, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		saved.Id,
		saved.Description,
		saved.Amount.String(),
		string(saved.Currency),
		saved.Category,
		formatTime(saved.Date),
		formatTime(saved.CreatedAt),
		formatTime(saved.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &saved, nil
}

// List returns every expense in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, currency, category, date, created_at, updated_at
		 FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindById(ctx context.Context, id string) (*models.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, description, amount, currency, category, date, created_at, updated_at
		 FROM expenses WHERE id = ?`, id)

	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, expense *models.Expense) (*models.Expense, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE expenses
		 SET description = ?, amount = ?, currency = ?, category = ?, date = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Description,
		expense.Amount.String(),
		string(expense.Currency),
		expense.Category,
		formatTime(expense.Date),
		formatTime(time.Now().UTC()),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}
	if err := requireAffected(result, id); err != nil {
		return nil, err
	}
	return r.FindById(ctx, id)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", models.ErrExpenseNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(s scanner) (models.Expense, error) {
	var (
		expense                    models.Expense
		amount, currency           string
		date, createdAt, updatedAt string
	)
	if err := s.Scan(&expense.Id, &expense.Description, &amount, &currency, &expense.Category, &date, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return expense, err
		}
		return expense, fmt.Errorf("scan expense: %w", err)
	}

	// a malformed stored amount counts as zero rather than failing the whole listing
	expense.Amount, _ = decimal.NewFromString(amount)
	expense.Currency = models.Currency(currency)
	expense.Date = parseTime(date)
	expense.CreatedAt = parseTime(createdAt)
	expense.UpdatedAt = parseTime(updatedAt)
	return expense, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) time.Time {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
