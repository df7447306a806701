package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendsense/spendsense-api/models"
)

func TestEffectiveBudget(t *testing.T) {
	assert.Equal(t, 10000.0+2500, EffectiveBudget(nil, 2500))

	base := 5000.0
	assert.Equal(t, 5000.0, EffectiveBudget(&base, 0))
	assert.Equal(t, 5750.0, EffectiveBudget(&base, 750))
}

func TestRemainingCanGoNegative(t *testing.T) {
	assert.Equal(t, -200.0, Remaining(1000, 1200))
	assert.Equal(t, 0.0, Remaining(1000, 1000))
}

func TestFindOrDefaultReturnsDefaultWithoutWriting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, amount, month, year").
		WithArgs("user-1", 3, 2025).
		WillReturnError(sql.ErrNoRows)

	svc := NewBudgetService(db)
	budget, err := svc.FindOrDefault(context.Background(), "user-1", 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, float64(models.DefaultBudgetAmount), budget.Amount)
	assert.Empty(t, budget.ID) // nothing was persisted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrDefaultReturnsStoredBudget(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "month", "year"}).
		AddRow("b-1", "user-1", 7500.0, 3, 2025)
	mock.ExpectQuery("SELECT id, user_id, amount, month, year").
		WithArgs("user-1", 3, 2025).
		WillReturnRows(rows)

	svc := NewBudgetService(db)
	budget, err := svc.FindOrDefault(context.Background(), "user-1", 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, 7500.0, budget.Amount)
	assert.Equal(t, "b-1", budget.ID)
}

func TestGetOrCreateInsertsDefaultOnFirstAccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, user_id, amount, month, year").
		WithArgs("user-1", 3, 2025).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO budgets").
		WithArgs(sqlmock.AnyArg(), "user-1", float64(models.DefaultBudgetAmount), 3, 2025).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewBudgetService(db)
	budget, err := svc.GetOrCreate(context.Background(), "user-1", now)
	require.NoError(t, err)

	assert.Equal(t, float64(models.DefaultBudgetAmount), budget.Amount)
	assert.NotEmpty(t, budget.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUsesConflictKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("ON CONFLICT \\(user_id, month, year\\)").
		WithArgs(sqlmock.AnyArg(), "user-1", 8000.0, 3, 2025).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewBudgetService(db)
	require.NoError(t, svc.Upsert(context.Background(), "user-1", 8000, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
