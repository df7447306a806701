package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendsense/spendsense-api/models"
)

func TestProgressTiers(t *testing.T) {
	cases := []struct {
		name   string
		spent  float64
		target float64
		tier   models.GoalTier
	}{
		{"just under half", 49, 100, models.TierWellUnder},
		{"half", 50, 100, models.TierOnTrack},
		{"three quarters", 75, 100, models.TierApproachingLimit},
		{"at limit", 100, 100, models.TierOverBudget},
		{"well over", 150, 100, models.TierOverBudget},
		{"nothing spent", 0, 100, models.TierWellUnder},
		{"zero target nothing spent", 0, 0, models.TierWellUnder},
		{"zero target with spend", 1, 0, models.TierOverBudget},
		{"negative target with spend", 10, -5, models.TierOverBudget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tier, Progress(tc.spent, tc.target).Tier)
		})
	}
}

func TestProgressDisplayPercentageClamped(t *testing.T) {
	p := Progress(500, 100) // raw 500%
	assert.Equal(t, models.TierOverBudget, p.Tier)
	assert.Equal(t, 150, p.Percentage)

	p = Progress(74.6, 100) // rounds to 75
	assert.Equal(t, models.TierApproachingLimit, p.Tier)
	assert.Equal(t, 75, p.Percentage)
}

func TestGoalUpsertUsesConflictKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("ON CONFLICT \\(user_id, category\\)").
		WithArgs(sqlmock.AnyArg(), "user-1", "food", 300.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewGoalService(db)
	require.NoError(t, svc.Upsert(context.Background(), "user-1", "food", 300))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalUpsertStoresCategoryVerbatim(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Validation happens at the handler; the service never rewrites the label.
	mock.ExpectExec("ON CONFLICT \\(user_id, category\\)").
		WithArgs(sqlmock.AnyArg(), "user-1", "entertainment", 100.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewGoalService(db)
	require.NoError(t, svc.Upsert(context.Background(), "user-1", "entertainment", 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpentByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"amount", "category"}).
		AddRow(10.0, "food").
		AddRow(5.5, "food").
		AddRow(3.0, "")
	mock.ExpectQuery("SELECT amount, category").
		WithArgs("user-1").
		WillReturnRows(rows)

	svc := NewGoalService(db)
	totals, err := svc.SpentByCategory(context.Background(), "user-1")
	require.NoError(t, err)

	assert.InDelta(t, 15.5, totals["food"], 1e-9)
	assert.InDelta(t, 3.0, totals["other"], 1e-9)
}

func TestGoalDeleteRequiresOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM budget_goals").
		WithArgs("goal-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := NewGoalService(db)
	err = svc.Delete(context.Background(), "goal-1", "intruder")
	assert.Error(t, err)
}
