package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spendsense/spendsense-api/models"
)

const recentLimit = 5

// DashboardService composes the figures the dashboard renders. The reads are
// independent of one another, so they are issued concurrently.
type DashboardService struct {
	budgets  *BudgetService
	expenses *ExpenseService
	income   *IncomeService
}

func NewDashboardService(budgets *BudgetService, expenses *ExpenseService, income *IncomeService) *DashboardService {
	return &DashboardService{budgets: budgets, expenses: expenses, income: income}
}

func (s *DashboardService) Summary(ctx context.Context, userID string, now time.Time) (*models.DashboardSummary, error) {
	var (
		budget         *models.Budget
		totalSpent     float64
		totalIncome    float64
		recentExpenses []models.Expense
		recentIncome   []models.Income
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		budget, err = s.budgets.GetOrCreate(gctx, userID, now)
		return err
	})
	g.Go(func() error {
		var err error
		totalSpent, err = s.expenses.TotalSpent(gctx, userID, now)
		return err
	})
	g.Go(func() error {
		var err error
		totalIncome, err = s.income.TotalIncome(gctx, userID, now)
		return err
	})
	g.Go(func() error {
		var err error
		recentExpenses, err = s.expenses.Recent(gctx, userID, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recentIncome, err = s.income.Recent(gctx, userID, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	effective := EffectiveBudget(&budget.Amount, totalIncome)

	return &models.DashboardSummary{
		TotalBudget:    effective,
		TotalSpent:     totalSpent,
		TotalIncome:    totalIncome,
		Remaining:      Remaining(effective, totalSpent),
		RecentExpenses: recentExpenses,
		RecentIncome:   recentIncome,
	}, nil
}
