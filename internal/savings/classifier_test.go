package savings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/savings"
	"github.com/daniilgb/budgetwise/models"
)

func tx(amount int64, category, typ string, date time.Time) models.Transaction {
	return models.Transaction{
		UserID:   "u1",
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Type:     typ,
		Date:     models.FlexTime{Time: date},
	}
}

func TestOnDateCoversFullCalendarDay(t *testing.T) {
	day := time.Date(2025, 5, 3, 0, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(10, "F&B", models.TypeExpense, time.Date(2025, 5, 3, 0, 0, 1, 0, time.Local)),
		tx(20, "F&B", models.TypeExpense, time.Date(2025, 5, 3, 23, 59, 59, 0, time.Local)),
		tx(30, "F&B", models.TypeExpense, time.Date(2025, 5, 4, 0, 0, 0, 0, time.Local)),
		tx(40, "F&B", models.TypeExpense, time.Date(2025, 5, 2, 23, 59, 59, 0, time.Local)),
	}

	got := savings.OnDate(transactions, day)
	if len(got) != 2 {
		t.Fatalf("transactions on %s: got %d, want 2", day.Format("2006-01-02"), len(got))
	}
}

func TestOnDateExcludesInvalidDates(t *testing.T) {
	day := time.Date(2025, 5, 3, 0, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(10, "F&B", models.TypeExpense, time.Time{}),
		tx(20, "F&B", models.TypeExpense, day),
	}

	got := savings.OnDate(transactions, day)
	if len(got) != 1 {
		t.Fatalf("zero-dated transaction not excluded: got %d entries", len(got))
	}
	if !got[0].Amount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("kept wrong transaction: %+v", got[0])
	}
}

func TestInMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx(10, "F&B", models.TypeExpense, time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)),
		tx(20, "F&B", models.TypeExpense, time.Date(2025, 5, 31, 23, 0, 0, 0, time.Local)),
		tx(30, "F&B", models.TypeExpense, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)),
		tx(40, "F&B", models.TypeExpense, time.Time{}),
	}

	got := savings.InMonth(transactions, time.Date(2025, 5, 15, 12, 0, 0, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("transactions in month: got %d, want 2", len(got))
	}
}

func TestTransferCountsAsIncome(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(50, "F&B", models.TypeExpense, day),
		tx(20, models.CategoryTransfer, models.TypeExpense, day),
	}

	expenses := savings.ActualExpenses(transactions)
	income := savings.ActualIncome(transactions)

	if !expenses.Equal(decimal.NewFromInt(50)) {
		t.Errorf("actual expenses: got %s, want 50", expenses)
	}
	if !income.Equal(decimal.NewFromInt(20)) {
		t.Errorf("actual income: got %s, want 20", income)
	}
}

func TestActualTotalsNonNegative(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(100, "Salary", models.TypeIncome, day),
		tx(35, "Transport", models.TypeExpense, day),
		tx(5, models.CategoryTransfer, models.TypeIncome, day),
	}

	if savings.ActualExpenses(transactions).IsNegative() {
		t.Error("expenses went negative")
	}
	if savings.ActualIncome(transactions).IsNegative() {
		t.Error("income went negative")
	}
	if !savings.ActualIncome(transactions).Equal(decimal.NewFromInt(105)) {
		t.Errorf("income: got %s, want 105", savings.ActualIncome(transactions))
	}
}
