// Package savings is the projection engine behind the dashboard: it turns
// transaction and budget snapshots into per-day and aggregate savings figures.
// Everything here is a pure function of its inputs; callers pass the current
// time explicitly, the package does no I/O and holds no state.
package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/models"
)

// DailyBudget spreads the combined monthly budget evenly across the days of
// the month containing date. Income and expense budgets both contribute to
// the same pool.
func DailyBudget(budgets []models.Budget, date time.Time) decimal.Decimal {
	if len(budgets) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.MonthlyBudget)
	}
	return total.Div(decimal.NewFromInt(int64(DaysInMonth(date))))
}

// DaysInMonth returns the number of calendar days (28-31) in the month
// containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1).Day()
}
