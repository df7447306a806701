package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/spendsense/spendsense-api/models"
)

type BudgetService struct {
	db *sql.DB
}

func NewBudgetService(db *sql.DB) *BudgetService {
	return &BudgetService{db: db}
}

// EffectiveBudget composes the stored base amount with the current month's
// income. A nil base means no budget row exists yet and the default applies.
func EffectiveBudget(baseBudgetAmount *float64, monthIncome float64) float64 {
	base := float64(models.DefaultBudgetAmount)
	if baseBudgetAmount != nil {
		base = *baseBudgetAmount
	}
	return base + monthIncome
}

// Remaining may be negative; that is a valid over-budget state.
func Remaining(effectiveBudget, monthSpent float64) float64 {
	return effectiveBudget - monthSpent
}

// FindOrDefault returns the stored budget for (month, year) or, without
// writing anything, a default-amount budget when none exists.
func (s *BudgetService) FindOrDefault(ctx context.Context, userID string, month, year int) (*models.Budget, error) {
	budget, err := s.find(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return &models.Budget{
			UserID: userID,
			Amount: models.DefaultBudgetAmount,
			Month:  month,
			Year:   year,
		}, nil
	}
	return budget, nil
}

// GetOrCreate returns the stored budget for (month, year), lazily inserting
// the default one on first access that month.
func (s *BudgetService) GetOrCreate(ctx context.Context, userID string, now time.Time) (*models.Budget, error) {
	month, year := int(now.Month()), now.Year()

	budget, err := s.find(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if budget != nil {
		return budget, nil
	}

	budget = &models.Budget{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: models.DefaultBudgetAmount,
		Month:  month,
		Year:   year,
	}

	// Concurrent first access resolves through the (user_id, month, year)
	// conflict key; the default never overwrites an amount set in between.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, user_id, amount, month, year)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, month, year) DO NOTHING
	`, budget.ID, budget.UserID, budget.Amount, budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// Upsert sets the budget amount for the current month.
func (s *BudgetService) Upsert(ctx context.Context, userID string, amount float64, now time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, user_id, amount, month, year)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, month, year) DO UPDATE SET amount = EXCLUDED.amount
	`, uuid.New().String(), userID, amount, int(now.Month()), now.Year())
	return err
}

func (s *BudgetService) find(ctx context.Context, userID string, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, amount, month, year
		FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3
	`, userID, month, year).Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.Month, &budget.Year)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}
