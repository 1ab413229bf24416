package savings_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/savings"
	"github.com/daniilgb/budgetwise/models"
)

func TestExpensesByCategory(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(30, "F&B", models.TypeExpense, day),
		tx(80, "Rent", models.TypeExpense, day),
		tx(20, "F&B", models.TypeExpense, day),
		tx(500, "Salary", models.TypeIncome, day),
		tx(40, models.CategoryTransfer, models.TypeExpense, day),
	}

	got := savings.ExpensesByCategory(transactions)

	if len(got) != 2 {
		t.Fatalf("category count: got %d, want 2", len(got))
	}
	if got[0].Category != "Rent" || !got[0].Amount.Equal(decimal.NewFromInt(80)) {
		t.Errorf("top category: got %+v, want Rent=80", got[0])
	}
	if got[1].Category != "F&B" || !got[1].Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("second category: got %+v, want F&B=50", got[1])
	}
}

func TestExpensesByCategoryPreservesTotalMass(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(13, "A", models.TypeExpense, day),
		tx(7, "B", models.TypeExpense, day),
		tx(5, "A", models.TypeExpense, day),
		tx(11, "C", models.TypeExpense, day),
	}

	aggregated := savings.ExpensesByCategory(transactions)

	sum := decimal.Zero
	for _, ct := range aggregated {
		sum = sum.Add(ct.Amount)
	}
	if !sum.Equal(savings.ActualExpenses(transactions)) {
		t.Errorf("aggregated mass %s != expense total %s", sum, savings.ActualExpenses(transactions))
	}
}

func TestExpensesByCategoryTiesKeepFirstSeenOrder(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		tx(25, "Zoo", models.TypeExpense, day),
		tx(25, "Art", models.TypeExpense, day),
	}

	got := savings.ExpensesByCategory(transactions)
	if got[0].Category != "Zoo" || got[1].Category != "Art" {
		t.Errorf("tie order not stable: got %q then %q", got[0].Category, got[1].Category)
	}
}

func TestProgressOverBudget(t *testing.T) {
	got := savings.Progress("F&B", decimal.NewFromInt(500), decimal.NewFromInt(600))

	if !got.Percentage.Equal(decimal.NewFromInt(120)) {
		t.Errorf("raw percentage: got %s, want 120", got.Percentage)
	}
	if !got.DisplayPercentage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("display percentage: got %s, want 100", got.DisplayPercentage)
	}
	if !got.IsOverBudget {
		t.Error("expected over-budget")
	}
	if !got.Remaining.IsZero() {
		t.Errorf("remaining: got %s, want 0", got.Remaining)
	}
}

func TestProgressUnderBudget(t *testing.T) {
	got := savings.Progress("F&B", decimal.NewFromInt(200), decimal.NewFromInt(50))

	if !got.Percentage.Equal(decimal.NewFromInt(25)) {
		t.Errorf("percentage: got %s, want 25", got.Percentage)
	}
	if got.IsOverBudget {
		t.Error("unexpected over-budget")
	}
	if !got.Remaining.Equal(decimal.NewFromInt(150)) {
		t.Errorf("remaining: got %s, want 150", got.Remaining)
	}
}

func TestProgressZeroBudget(t *testing.T) {
	got := savings.Progress("Misc", decimal.Zero, decimal.NewFromInt(40))

	if !got.Percentage.IsZero() {
		t.Errorf("zero budget percentage: got %s, want 0", got.Percentage)
	}
	if got.IsOverBudget {
		t.Error("zero budget should not flag over-budget")
	}
}

func TestProgressExactlyAtBudget(t *testing.T) {
	got := savings.Progress("F&B", decimal.NewFromInt(500), decimal.NewFromInt(500))
	if !got.IsOverBudget {
		t.Error("100% spent should flag over-budget")
	}
}

func TestSortTransactions(t *testing.T) {
	day := time.Date(2025, 5, 3, 12, 0, 0, 0, time.Local)
	original := []models.Transaction{
		tx(10, "Citrus", models.TypeExpense, day),
		tx(30, "Apples", models.TypeExpense, day),
		tx(20, "Bread", models.TypeExpense, day),
	}

	byAmount := savings.SortTransactions(original, savings.SortAmount)
	if !byAmount[0].Amount.Equal(decimal.NewFromInt(30)) || !byAmount[2].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("amount sort wrong: %+v", byAmount)
	}

	byCategory := savings.SortTransactions(original, savings.SortCategory)
	if byCategory[0].Category != "Apples" || byCategory[2].Category != "Citrus" {
		t.Errorf("category sort wrong: %+v", byCategory)
	}

	recent := savings.SortTransactions(original, savings.SortRecent)
	for i := range original {
		if recent[i].Category != original[i].Category {
			t.Errorf("recent sort must keep store order, got %+v", recent)
		}
	}

	// Input must not be mutated.
	if original[0].Category != "Citrus" {
		t.Error("sort mutated its input")
	}
}
