package models

// DefaultBudgetAmount is the base budget lazily created the first time a user
// touches a month with no stored budget.
const DefaultBudgetAmount = 10000

type Budget struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
}

type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// DashboardSummary is the composed view the dashboard renders: the effective
// budget already includes the current month's income.
type DashboardSummary struct {
	TotalBudget    float64   `json:"total_budget"`
	TotalSpent     float64   `json:"total_spent"`
	TotalIncome    float64   `json:"total_income"`
	Remaining      float64   `json:"remaining"`
	RecentExpenses []Expense `json:"recent_expenses"`
	RecentIncome   []Income  `json:"recent_income"`
}
