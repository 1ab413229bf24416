package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daniilgb/budgetwise/models"
)

// UpsertBudget creates or replaces the budget for (user, category). Category
// is the natural key, so setting a budget twice is an idempotent overwrite.
func UpsertBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, monthly_budget, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category)
		DO UPDATE SET monthly_budget = EXCLUDED.monthly_budget, type = EXCLUDED.type, updated_at = now()
		RETURNING created_at, updated_at`

	err := pool.QueryRow(ctx, query,
		budget.UserID,
		budget.Category,
		budget.MonthlyBudget,
		budget.Type).Scan(&budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}
	return nil
}

func GetBudgetByCategory(ctx context.Context, pool *pgxpool.Pool, userID, category string) (*models.Budget, error) {
	query := `
		SELECT user_id, category, monthly_budget, type, created_at, updated_at
		FROM budgets
		WHERE user_id = $1 AND category = $2`

	budget := &models.Budget{}
	err := pool.QueryRow(ctx, query, userID, category).Scan(
		&budget.UserID,
		&budget.Category,
		&budget.MonthlyBudget,
		&budget.Type,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("budget %s/%s: %w", userID, category, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching budget: %w", err)
	}
	return budget, nil
}

func GetBudgetsByUserID(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Budget, error) {
	query := `
		SELECT user_id, category, monthly_budget, type, created_at, updated_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY category`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(
			&b.UserID,
			&b.Category,
			&b.MonthlyBudget,
			&b.Type,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	return budgets, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, category string) error {
	result, err := pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND category = $2`, userID, category)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("budget %s/%s: %w", userID, category, ErrNotFound)
	}
	return nil
}
