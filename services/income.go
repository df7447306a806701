package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendsense/spendsense-api/models"
)

type IncomeService struct {
	db *sql.DB
}

func NewIncomeService(db *sql.DB) *IncomeService {
	return &IncomeService{db: db}
}

// List returns all of the user's income records, newest first.
func (s *IncomeService) List(ctx context.Context, userID string) ([]models.Income, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, source, created_at
		FROM income
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIncome(rows)
}

func (s *IncomeService) Recent(ctx context.Context, userID string, limit int) ([]models.Income, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, description, source, created_at
		FROM income
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIncome(rows)
}

// TotalIncome sums the user's income within now's calendar month.
func (s *IncomeService) TotalIncome(ctx context.Context, userID string, now time.Time) (float64, error) {
	start, end := MonthWindow(now)

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, created_at
		FROM income
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

func (s *IncomeService) Add(ctx context.Context, userID string, req models.AddIncomeRequest) (*models.Income, error) {
	income := &models.Income{
		ID:          uuid.New().String(),
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Source:      req.Source,
		CreatedAt:   time.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO income (id, user_id, amount, description, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, income.ID, income.UserID, income.Amount, income.Description, income.Source, income.CreatedAt)
	if err != nil {
		return nil, err
	}

	return income, nil
}

func (s *IncomeService) Delete(ctx context.Context, incomeID, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM income WHERE id = $1 AND user_id = $2
	`, incomeID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("income not found")
	}
	return nil
}

func scanIncome(rows *sql.Rows) ([]models.Income, error) {
	income := []models.Income{}
	for rows.Next() {
		var i models.Income
		if err := rows.Scan(&i.ID, &i.UserID, &i.Amount, &i.Description, &i.Source, &i.CreatedAt); err != nil {
			return nil, err
		}
		income = append(income, i)
	}
	return income, rows.Err()
}
