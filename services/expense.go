package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendsense/spendsense-api/models"
)

type ExpenseService struct {
	db *sql.DB
}

func NewExpenseService(db *sql.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// List returns all of the user's expenses, newest first.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, category, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// Recent returns the user's latest expenses, at most limit of them.
func (s *ExpenseService) Recent(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, category, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// TotalSpent sums the user's expenses within now's calendar month.
func (s *ExpenseService) TotalSpent(ctx context.Context, userID string, now time.Time) (float64, error) {
	start, end := MonthWindow(now)

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, created_at
		FROM expenses
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
	`, userID, start, end)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var records []DatedAmount
	for rows.Next() {
		var r DatedAmount
		if err := rows.Scan(&r.Amount, &r.CreatedAt); err != nil {
			return 0, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return SumInCurrentMonth(records, now), nil
}

func (s *ExpenseService) Add(ctx context.Context, userID string, req models.AddExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		CreatedAt:   time.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, expense.ID, expense.UserID, expense.Amount, expense.Description, expense.Category, expense.CreatedAt)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// Delete removes an expense only if it belongs to the user.
func (s *ExpenseService) Delete(ctx context.Context, expenseID, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM expenses WHERE id = $1 AND user_id = $2
	`, expenseID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

// AllCategorized returns the user's all-time expenses in the shape the
// category aggregator consumes.
func (s *ExpenseService) AllCategorized(ctx context.Context, userID string) ([]CategorizedAmount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, category
		FROM expenses
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CategorizedAmount
	for rows.Next() {
		var r CategorizedAmount
		if err := rows.Scan(&r.Amount, &r.Category); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanExpenses(rows *sql.Rows) ([]models.Expense, error) {
	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
