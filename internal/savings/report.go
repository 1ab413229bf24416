package savings

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/models"
)

// SortMode selects an ordering for transaction lists.
type SortMode string

const (
	SortRecent   SortMode = "recent"
	SortAmount   SortMode = "amount"
	SortCategory SortMode = "category"
)

var hundred = decimal.NewFromInt(100)

// ExpensesByCategory groups expense transactions by category and sums their
// amounts, sorted by total descending. The sort is stable, so categories with
// equal totals keep first-seen order.
func ExpensesByCategory(transactions []models.Transaction) []models.CategoryTotal {
	index := make(map[string]int)
	var out []models.CategoryTotal
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, models.CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// Progress computes spend against one category budget. The raw percentage is
// uncapped and drives over-budget detection; DisplayPercentage is clamped to
// 100 for progress-bar rendering. A zero budget yields zero percent.
func Progress(category string, budget, spent decimal.Decimal) models.BudgetProgress {
	pct := decimal.Zero
	if budget.IsPositive() {
		pct = spent.Div(budget).Mul(hundred)
	}
	display := pct
	if display.GreaterThan(hundred) {
		display = hundred
	}
	remaining := budget.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return models.BudgetProgress{
		Category:          category,
		Budget:            budget,
		Spent:             spent,
		Remaining:         remaining,
		Percentage:        pct,
		DisplayPercentage: display,
		IsOverBudget:      pct.GreaterThanOrEqual(hundred),
	}
}

// SortTransactions returns a sorted copy. SortRecent keeps the order the
// store delivered; SortAmount is descending by amount; SortCategory is
// alphabetical. Unknown modes keep store order.
func SortTransactions(transactions []models.Transaction, mode SortMode) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	switch mode {
	case SortAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Category < out[j].Category
		})
	}
	return out
}
