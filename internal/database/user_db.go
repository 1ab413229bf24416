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

var ErrNotFound = errors.New("not found")

func CreateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `
		INSERT INTO users (id, name, income, savings, categories, income_categories, onboarding_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Income,
		user.Savings,
		user.Categories,
		user.IncomeCategories,
		user.OnboardingCompleted).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.User, error) {
	query := `
		SELECT id, name, income, savings, categories, income_categories, onboarding_completed, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Income,
		&user.Savings,
		&user.Categories,
		&user.IncomeCategories,
		&user.OnboardingCompleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func UpdateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, income = $2, savings = $3, categories = $4, income_categories = $5,
			onboarding_completed = $6, updated_at = now()
		WHERE id = $7`

	result, err := pool.Exec(ctx, query,
		user.Name,
		user.Income,
		user.Savings,
		user.Categories,
		user.IncomeCategories,
		user.OnboardingCompleted,
		user.ID)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

func DeleteUser(ctx context.Context, pool *pgxpool.Pool, id string) error {
	result, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// UserExists is the identity check used by the ingest endpoint before
// accepting a transaction for a user id.
func UserExists(ctx context.Context, pool *pgxpool.Pool, id string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}
	return exists, nil
}
