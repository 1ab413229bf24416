package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetRange selects the reporting window for budget projection.
type BudgetRange string

const (
	RangeDaily  BudgetRange = "daily"
	RangeWeek   BudgetRange = "week"
	RangeMonth  BudgetRange = "month"
	RangeYearly BudgetRange = "yearly"
	RangeAll    BudgetRange = "all"
)

// DailySavings is one calendar day of the savings projection. Derived only,
// never persisted.
type DailySavings struct {
	Date              time.Time       `json:"date"`
	BudgetPerDay      decimal.Decimal `json:"budget_per_day"`
	ActualExpenses    decimal.Decimal `json:"actual_expenses"`
	ActualIncome      decimal.Decimal `json:"actual_income"`
	DailySavings      decimal.Decimal `json:"daily_savings"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`
}

// SavingsSummary is the full projection from the earliest tracked day to today.
type SavingsSummary struct {
	TotalSavings        decimal.Decimal `json:"total_savings"`
	DailyBreakdown      []DailySavings  `json:"daily_breakdown"`
	AverageDailySavings decimal.Decimal `json:"average_daily_savings"`
	DaysTracked         int             `json:"days_tracked"`
}

// CategoryTotal is one category's summed expenses for reporting.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetProgress describes spend against one category budget. Percentage is
// uncapped and drives over-budget detection; DisplayPercentage is clamped to
// 100 for progress bars.
type BudgetProgress struct {
	Category          string          `json:"category"`
	Budget            decimal.Decimal `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	Percentage        decimal.Decimal `json:"percentage"`
	DisplayPercentage decimal.Decimal `json:"display_percentage"`
	IsOverBudget      bool            `json:"is_over_budget"`
}
