package services

import (
	"math"
	"time"
)

// DatedAmount is the minimal shape the window aggregator needs; both expenses
// and income satisfy it.
type DatedAmount struct {
	Amount    float64
	CreatedAt time.Time
}

// CategorizedAmount is the minimal shape the category aggregator needs.
type CategorizedAmount struct {
	Amount   float64
	Category string
}

// MonthWindow returns the inclusive bounds of now's calendar month in now's
// location.
func MonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// SumInCurrentMonth sums the amounts of records whose timestamp falls within
// now's calendar month. Records outside the window are ignored; non-finite
// amounts count as zero. An empty input sums to zero.
func SumInCurrentMonth(records []DatedAmount, now time.Time) float64 {
	start, end := MonthWindow(now)

	var total float64
	for _, r := range records {
		if r.CreatedAt.Before(start) || r.CreatedAt.After(end) {
			continue
		}
		total += safeAmount(r.Amount)
	}
	return total
}

// ByCategory groups records by their exact category string and sums amounts
// per group. A missing category accumulates under "other"; the record itself
// is not rewritten. Plain addition keeps the result independent of input
// order.
func ByCategory(records []CategorizedAmount) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = "other"
		}
		totals[category] += safeAmount(r.Amount)
	}
	return totals
}

func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
