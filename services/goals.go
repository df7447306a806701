package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/spendsense/spendsense-api/models"
)

// displayPercentageCap caps the percentage shown on progress bars; the raw
// percentage still drives tier selection.
const displayPercentageCap = 150

type GoalService struct {
	db *sql.DB
}

func NewGoalService(db *sql.DB) *GoalService {
	return &GoalService{db: db}
}

// Progress classifies spending against a target. Thresholds are evaluated
// highest first; a non-positive target is treated as already exceeded unless
// nothing was spent.
func Progress(spent, target float64) models.GoalProgress {
	if target <= 0 {
		if spent > 0 {
			return models.GoalProgress{Label: "OVER BUDGET", Tier: models.TierOverBudget, Percentage: displayPercentageCap}
		}
		return models.GoalProgress{Label: "WELL UNDER BUDGET", Tier: models.TierWellUnder, Percentage: 0}
	}

	percentage := int(math.Round(100 * spent / target))
	display := percentage
	if display > displayPercentageCap {
		display = displayPercentageCap
	}
	if display < 0 {
		display = 0
	}

	switch {
	case percentage >= 100:
		return models.GoalProgress{Label: "OVER BUDGET", Tier: models.TierOverBudget, Percentage: display}
	case percentage >= 75:
		return models.GoalProgress{Label: "APPROACHING LIMIT", Tier: models.TierApproachingLimit, Percentage: display}
	case percentage >= 50:
		return models.GoalProgress{Label: "ON TRACK", Tier: models.TierOnTrack, Percentage: display}
	default:
		return models.GoalProgress{Label: "WELL UNDER BUDGET", Tier: models.TierWellUnder, Percentage: display}
	}
}

// List returns the user's goals, newest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]models.BudgetGoal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, category, target_amount, created_at, updated_at
		FROM budget_goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.BudgetGoal{}
	for rows.Next() {
		var g models.BudgetGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Category, &g.TargetAmount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// ListWithProgress pairs each goal with its category spend and tier.
func (s *GoalService) ListWithProgress(ctx context.Context, userID string) ([]models.GoalWithProgress, error) {
	goals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	spent, err := s.SpentByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		categorySpent := spent[g.Category]
		result = append(result, models.GoalWithProgress{
			BudgetGoal: g,
			Spent:      categorySpent,
			Progress:   Progress(categorySpent, g.TargetAmount),
		})
	}
	return result, nil
}

// Upsert sets the target for (user, category); at most one goal per category.
func (s *GoalService) Upsert(ctx context.Context, userID, category string, targetAmount float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_goals (id, user_id, category, target_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, category)
		DO UPDATE SET target_amount = EXCLUDED.target_amount, updated_at = NOW()
	`, uuid.New().String(), userID, category, targetAmount)
	return err
}

func (s *GoalService) Delete(ctx context.Context, goalID, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM budget_goals WHERE id = $1 AND user_id = $2
	`, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("budget goal not found")
	}
	return nil
}

// SpentByCategory totals the user's all-time expenses per category.
// TODO: confirm whether goal progress should use the current month instead;
// the budget figures elsewhere are month-scoped but goals have always
// accumulated all time.
func (s *GoalService) SpentByCategory(ctx context.Context, userID string) (map[string]float64, error) {
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ByCategory(records), nil
}
