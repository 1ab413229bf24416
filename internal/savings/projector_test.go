package savings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/savings"
	"github.com/daniilgb/budgetwise/models"
)

func TestTotalBudgetForRange(t *testing.T) {
	// June 2025 has 30 days.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(1000)

	cases := []struct {
		name string
		rng  models.BudgetRange
		want decimal.Decimal
	}{
		{"daily", models.RangeDaily, monthly.Div(decimal.NewFromInt(30))},
		{"week", models.RangeWeek, monthly.Div(decimal.NewFromInt(30)).Mul(decimal.NewFromInt(7))},
		{"month", models.RangeMonth, monthly},
		{"yearly", models.RangeYearly, decimal.NewFromInt(12000)},
		{"unknown falls back to month", models.BudgetRange("quarter"), monthly},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := savings.TotalBudgetForRange(monthly, c.rng, nil, now)
			if !got.Equal(c.want) {
				t.Errorf("range %q: got %s, want %s", c.rng, got, c.want)
			}
		})
	}
}

func TestTotalBudgetForRangeAllTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(1000)

	// Oldest transaction two calendar months back spans three months.
	transactions := []models.Transaction{
		tx(10, "F&B", models.TypeExpense, time.Date(2025, 4, 28, 0, 0, 0, 0, time.Local)),
		tx(10, "F&B", models.TypeExpense, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)),
	}

	got := savings.TotalBudgetForRange(monthly, models.RangeAll, transactions, now)
	if !got.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("all-time over three months: got %s, want 3000", got)
	}
}

func TestTotalBudgetForRangeAllTimeNoTransactions(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(1000)

	got := savings.TotalBudgetForRange(monthly, models.RangeAll, nil, now)
	if !got.Equal(monthly) {
		t.Errorf("all-time fallback: got %s, want %s", got, monthly)
	}
}

func TestTotalBudgetForRangeAllTimeSameMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	monthly := decimal.NewFromInt(1000)

	transactions := []models.Transaction{
		tx(10, "F&B", models.TypeExpense, time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)),
	}

	got := savings.TotalBudgetForRange(monthly, models.RangeAll, transactions, now)
	if !got.Equal(monthly) {
		t.Errorf("all-time within one month: got %s, want %s", got, monthly)
	}
}
