package savings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/models"
)

// OnDate returns the transactions that fall on the same local calendar day as
// date. Transactions whose dates failed to parse (zero time) are excluded.
func OnDate(transactions []models.Transaction, date time.Time) []models.Transaction {
	y, m, d := date.Local().Date()
	var out []models.Transaction
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		ty, tm, td := tx.Date.Local().Date()
		if ty == y && tm == m && td == d {
			out = append(out, tx)
		}
	}
	return out
}

// InMonth returns the transactions that fall in the same local calendar month
// as date, excluding zero dates.
func InMonth(transactions []models.Transaction, date time.Time) []models.Transaction {
	y, m, _ := date.Local().Date()
	var out []models.Transaction
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		ty, tm, _ := tx.Date.Local().Date()
		if ty == y && tm == m {
			out = append(out, tx)
		}
	}
	return out
}

// ActualExpenses sums expense-typed transactions, skipping Transfers.
func ActualExpenses(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.IsExpense() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// ActualIncome sums income-typed transactions plus anything in the Transfer
// category, whatever its type.
func ActualIncome(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.IsIncomeEquivalent() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
