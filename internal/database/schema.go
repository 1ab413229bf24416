package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		income NUMERIC NOT NULL DEFAULT 0,
		savings NUMERIC NOT NULL DEFAULT 0,
		categories TEXT[] NOT NULL DEFAULT '{}',
		income_categories TEXT[] NOT NULL DEFAULT '{}',
		onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		amount NUMERIC NOT NULL CHECK (amount >= 0),
		category TEXT NOT NULL,
		type TEXT NOT NULL,
		transaction_date TIMESTAMPTZ,
		notes TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'web',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_date
		ON transactions (user_id, transaction_date)`,
	`CREATE TABLE IF NOT EXISTS budgets (
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		monthly_budget NUMERIC NOT NULL CHECK (monthly_budget >= 0),
		type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, category)
	)`,
	`CREATE TABLE IF NOT EXISTS push_subscriptions (
		endpoint_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		endpoint TEXT NOT NULL,
		auth TEXT NOT NULL,
		p256dh TEXT NOT NULL,
		is_ios_safari BOOLEAN NOT NULL DEFAULT FALSE,
		user_agent TEXT NOT NULL DEFAULT '',
		last_seen TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_push_subscriptions_user
		ON push_subscriptions (user_id)`,
}

// EnsureSchema creates the tables on startup when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
