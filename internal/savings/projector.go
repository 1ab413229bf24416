package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/models"
)

var (
	seven  = decimal.NewFromInt(7)
	twelve = decimal.NewFromInt(12)
)

// TotalBudgetForRange scales a monthly budget total to the requested
// reporting window. The all-time range needs the transaction list to find the
// oldest transaction; with no transactions it falls back to the plain monthly
// figure. Unrecognized ranges behave like "month".
func TotalBudgetForRange(monthlyBudget decimal.Decimal, rng models.BudgetRange, transactions []models.Transaction, now time.Time) decimal.Decimal {
	switch rng {
	case models.RangeDaily:
		return monthlyBudget.Div(decimal.NewFromInt(int64(DaysInMonth(now))))
	case models.RangeWeek:
		return monthlyBudget.Div(decimal.NewFromInt(int64(DaysInMonth(now)))).Mul(seven)
	case models.RangeYearly:
		return monthlyBudget.Mul(twelve)
	case models.RangeAll:
		oldest, ok := earliestDate(transactions)
		if !ok {
			return monthlyBudget
		}
		span := monthsBetween(now, oldest) + 1
		if span < 1 {
			span = 1
		}
		return monthlyBudget.Mul(decimal.NewFromInt(int64(span)))
	default:
		return monthlyBudget
	}
}

// monthsBetween counts whole calendar-month boundaries from b up to a,
// ignoring the day of month.
func monthsBetween(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}
