package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/models"
)

func TestTransactionRoundtrip(t *testing.T) {
	pool := testPool(t)
	user := seedUser(t, pool)

	transaction := &models.Transaction{
		UserID:   user.ID,
		Amount:   decimal.RequireFromString("42.50"),
		Category: "F&B",
		Type:     models.TypeExpense,
		Date:     models.FlexTime{Time: time.Now()},
		Notes:    "lunch",
		Source:   models.SourceShortcut,
	}
	if err := database.CreateTransaction(context.Background(), pool, transaction); err != nil {
		t.Fatalf("creating transaction: %v", err)
	}
	if transaction.ID == "" {
		t.Fatal("transaction id not assigned")
	}

	got, err := database.GetTransactionByID(context.Background(), pool, transaction.ID)
	if err != nil {
		t.Fatalf("fetching transaction: %v", err)
	}
	if !got.Amount.Equal(transaction.Amount) || got.Category != "F&B" || got.Source != models.SourceShortcut {
		t.Errorf("fetched transaction mismatch: %+v", got)
	}

	got.Amount = decimal.RequireFromString("50.00")
	got.Notes = "dinner"
	if err := database.UpdateTransaction(context.Background(), pool, got); err != nil {
		t.Fatalf("updating transaction: %v", err)
	}

	list, err := database.GetTransactionsByUserID(context.Background(), pool, user.ID)
	if err != nil {
		t.Fatalf("listing transactions: %v", err)
	}
	if len(list) != 1 || !list[0].Amount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("listing after update: %+v", list)
	}

	if err := database.DeleteTransaction(context.Background(), pool, transaction.ID); err != nil {
		t.Fatalf("deleting transaction: %v", err)
	}
	if _, err := database.GetTransactionByID(context.Background(), pool, transaction.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}

func TestTransactionListOrder(t *testing.T) {
	pool := testPool(t)
	user := seedUser(t, pool)

	for _, notes := range []string{"first", "second", "third"} {
		transaction := &models.Transaction{
			UserID:   user.ID,
			Amount:   decimal.NewFromInt(1),
			Category: "Misc",
			Type:     models.TypeExpense,
			Date:     models.FlexTime{Time: time.Now()},
			Notes:    notes,
		}
		if err := database.CreateTransaction(context.Background(), pool, transaction); err != nil {
			t.Fatalf("creating transaction: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	list, err := database.GetTransactionsByUserID(context.Background(), pool, user.ID)
	if err != nil {
		t.Fatalf("listing transactions: %v", err)
	}
	if len(list) != 3 || list[0].Notes != "third" {
		t.Errorf("expected newest-first order, got %+v", list)
	}
}
