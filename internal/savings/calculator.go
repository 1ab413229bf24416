package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/models"
)

// Calculate walks every calendar day from the earliest valid transaction date
// through today (both inclusive) and produces the per-day breakdown together
// with the running cumulative total. Days without activity still get an entry,
// since the daily budget accrues whether or not money moved. No transactions
// with usable dates means an empty summary, not an error.
func Calculate(transactions []models.Transaction, budgets []models.Budget, now time.Time) models.SavingsSummary {
	start, ok := earliestDate(transactions)
	if !ok {
		return models.SavingsSummary{
			TotalSavings:        decimal.Zero,
			AverageDailySavings: decimal.Zero,
		}
	}

	today := startOfDay(now)
	cumulative := decimal.Zero
	var breakdown []models.DailySavings

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		entry := dayEntry(transactions, budgets, day)
		cumulative = cumulative.Add(entry.DailySavings)
		entry.CumulativeSavings = cumulative
		breakdown = append(breakdown, entry)
	}

	avg := decimal.Zero
	if len(breakdown) > 0 {
		avg = cumulative.Div(decimal.NewFromInt(int64(len(breakdown))))
	}

	return models.SavingsSummary{
		TotalSavings:        cumulative,
		DailyBreakdown:      breakdown,
		AverageDailySavings: avg,
		DaysTracked:         len(breakdown),
	}
}

// Today evaluates the daily-savings formula for the current date alone.
// CumulativeSavings stays zero; it has no meaning for a single day.
func Today(transactions []models.Transaction, budgets []models.Budget, now time.Time) models.DailySavings {
	return dayEntry(transactions, budgets, startOfDay(now))
}

func dayEntry(transactions []models.Transaction, budgets []models.Budget, day time.Time) models.DailySavings {
	onDay := OnDate(transactions, day)
	budget := DailyBudget(budgets, day)
	expenses := ActualExpenses(onDay)
	income := ActualIncome(onDay)
	return models.DailySavings{
		Date:           day,
		BudgetPerDay:   budget,
		ActualExpenses: expenses,
		ActualIncome:   income,
		DailySavings:   budget.Sub(expenses).Add(income),
	}
}

// earliestDate finds the start of the oldest valid transaction day. The
// second return is false when no transaction has a usable date.
func earliestDate(transactions []models.Transaction) (time.Time, bool) {
	var earliest time.Time
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date.Time
		}
	}
	if earliest.IsZero() {
		return time.Time{}, false
	}
	return startOfDay(earliest), true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
