package models

import "time"

type BudgetGoal struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Category     string    `json:"category"`
	TargetAmount float64   `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpsertGoalRequest struct {
	Category     string  `json:"category" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
}

// GoalTier classifies how far along a goal's spending is.
type GoalTier string

const (
	TierWellUnder        GoalTier = "WELL_UNDER"
	TierOnTrack          GoalTier = "ON_TRACK"
	TierApproachingLimit GoalTier = "APPROACHING_LIMIT"
	TierOverBudget       GoalTier = "OVER_BUDGET"
)

type GoalProgress struct {
	Label      string   `json:"label"`
	Tier       GoalTier `json:"tier"`
	Percentage int      `json:"percentage"` // clamped at 150 for display
}

type GoalWithProgress struct {
	BudgetGoal
	Spent    float64      `json:"spent"`
	Progress GoalProgress `json:"progress"`
}
