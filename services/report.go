package services

import (
	"context"
	"time"

	"github.com/spendsense/spendsense-api/models"
)

type ReportPeriod string

const (
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodYear  ReportPeriod = "year"
)

type Report struct {
	Expenses       []models.Expense   `json:"expenses"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	TopCategory    string             `json:"top_category"`
	TopAmount      float64            `json:"top_amount"`
	Total          float64            `json:"total"`
}

type ReportService struct {
	expenses *ExpenseService
}

func NewReportService(expenses *ExpenseService) *ReportService {
	return &ReportService{expenses: expenses}
}

// Build filters the user's expenses by period and optional category, then
// derives the per-category breakdown from the filtered set.
func (s *ReportService) Build(ctx context.Context, userID string, period ReportPeriod, category string, now time.Time) (*Report, error) {
	all, err := s.expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := FilterExpenses(all, period, category, now)

	records := make([]CategorizedAmount, 0, len(filtered))
	for _, e := range filtered {
		records = append(records, CategorizedAmount{Amount: e.Amount, Category: string(models.ParseCategory(e.Category))})
	}
	totals := ByCategory(records)

	report := &Report{
		Expenses:       filtered,
		CategoryTotals: totals,
	}
	for cat, amount := range totals {
		report.Total += amount
		if amount > report.TopAmount {
			report.TopCategory = cat
			report.TopAmount = amount
		}
	}
	return report, nil
}

// FilterExpenses keeps expenses inside the period and inside the category
// when one is given. Week is a rolling seven days ending at now; month and
// year are the calendar month and calendar year containing now.
func FilterExpenses(expenses []models.Expense, period ReportPeriod, category string, now time.Time) []models.Expense {
	var start, end time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
		end = now
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default:
		start, end = MonthWindow(now)
	}

	filtered := []models.Expense{}
	for _, e := range expenses {
		if e.CreatedAt.Before(start) || e.CreatedAt.After(end) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
