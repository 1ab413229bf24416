package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	// CategoryTransfer is a reserved category. Transactions in it count as
	// income-equivalent in savings math regardless of their stated type.
	CategoryTransfer = "Transfer"

	SourceWeb      = "web"
	SourceShortcut = "shortcut"
)

type Transaction struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Category  string          `json:"category" db:"category"`
	Type      string          `json:"type" db:"type"`
	Date      FlexTime        `json:"date" db:"transaction_date"`
	Notes     string          `json:"notes" db:"notes"`
	Source    string          `json:"source" db:"source"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// NormalizeType lowercases a transaction type ("Income", "EXPENSE", ...) and
// reports whether it is one of the two known values.
func NormalizeType(raw string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(raw))
	return t, t == TypeIncome || t == TypeExpense
}

// IsIncomeEquivalent reports whether the transaction counts toward income in
// savings calculations: income-typed, or anything in the Transfer category.
func (t Transaction) IsIncomeEquivalent() bool {
	return t.Type == TypeIncome || t.Category == CategoryTransfer
}

// IsExpense reports whether the transaction counts toward expenses. Transfers
// never do, even when flagged as expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense && t.Category != CategoryTransfer
}
