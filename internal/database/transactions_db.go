package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daniilgb/budgetwise/models"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Source == "" {
		transaction.Source = models.SourceWeb
	}
	query := `
		INSERT INTO transactions (id, user_id, amount, category, type, transaction_date, notes, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := pool.QueryRow(ctx, query,
		transaction.ID,
		transaction.UserID,
		transaction.Amount,
		transaction.Category,
		transaction.Type,
		transaction.Date,
		transaction.Notes,
		transaction.Source).Scan(&transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, type, transaction_date, notes, source, created_at
		FROM transactions
		WHERE id = $1`

	transaction := &models.Transaction{}
	err := pool.QueryRow(ctx, query, id).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.Amount,
		&transaction.Category,
		&transaction.Type,
		&transaction.Date,
		&transaction.Notes,
		&transaction.Source,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching transaction: %w", err)
	}
	return transaction, nil
}

// GetTransactionsByUserID returns the user's transactions newest-first. That
// order is what the UI's "recent" sort shows unchanged.
func GetTransactionsByUserID(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, type, transaction_date, notes, source, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Amount,
			&t.Category,
			&t.Type,
			&t.Date,
			&t.Notes,
			&t.Source,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, category = $2, type = $3, transaction_date = $4, notes = $5
		WHERE id = $6`

	result, err := pool.Exec(ctx, query,
		transaction.Amount,
		transaction.Category,
		transaction.Type,
		transaction.Date,
		transaction.Notes,
		transaction.ID)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transaction.ID, ErrNotFound)
	}
	return nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, id string) error {
	result, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return nil
}
