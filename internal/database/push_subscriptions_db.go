package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daniilgb/budgetwise/models"
)

// UpsertPushSubscription registers a device endpoint. The endpoint id is the
// sanitized endpoint string, so re-registering the same endpoint refreshes
// keys and last_seen instead of creating a duplicate.
func UpsertPushSubscription(ctx context.Context, pool *pgxpool.Pool, sub *models.PushSubscription) error {
	if sub.EndpointID == "" {
		sub.EndpointID = models.SanitizeEndpoint(sub.Endpoint)
	}
	query := `
		INSERT INTO push_subscriptions (endpoint_id, user_id, endpoint, auth, p256dh, is_ios_safari, user_agent, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (endpoint_id)
		DO UPDATE SET user_id = EXCLUDED.user_id, auth = EXCLUDED.auth, p256dh = EXCLUDED.p256dh,
			is_ios_safari = EXCLUDED.is_ios_safari, user_agent = EXCLUDED.user_agent, last_seen = now()
		RETURNING last_seen`

	err := pool.QueryRow(ctx, query,
		sub.EndpointID,
		sub.UserID,
		sub.Endpoint,
		sub.Keys.Auth,
		sub.Keys.P256dh,
		sub.IsIOSSafari,
		sub.UserAgent).Scan(&sub.LastSeen)
	if err != nil {
		return fmt.Errorf("upserting push subscription: %w", err)
	}
	return nil
}

func GetPushSubscriptionsByUserID(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.PushSubscription, error) {
	query := `
		SELECT endpoint_id, user_id, endpoint, auth, p256dh, is_ios_safari, user_agent, last_seen
		FROM push_subscriptions
		WHERE user_id = $1
		ORDER BY last_seen DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing push subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.PushSubscription
	for rows.Next() {
		var s models.PushSubscription
		if err := rows.Scan(
			&s.EndpointID,
			&s.UserID,
			&s.Endpoint,
			&s.Keys.Auth,
			&s.Keys.P256dh,
			&s.IsIOSSafari,
			&s.UserAgent,
			&s.LastSeen,
		); err != nil {
			return nil, fmt.Errorf("scanning push subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing push subscriptions: %w", err)
	}
	return subs, nil
}

func DeletePushSubscription(ctx context.Context, pool *pgxpool.Pool, endpointID string) error {
	result, err := pool.Exec(ctx, `DELETE FROM push_subscriptions WHERE endpoint_id = $1`, endpointID)
	if err != nil {
		return fmt.Errorf("deleting push subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("push subscription %s: %w", endpointID, ErrNotFound)
	}
	return nil
}

// DeleteStalePushSubscriptions prunes endpoints not seen since the cutoff.
// Returns the number of rows removed.
func DeleteStalePushSubscriptions(ctx context.Context, pool *pgxpool.Pool, olderThan time.Time) (int64, error) {
	result, err := pool.Exec(ctx, `DELETE FROM push_subscriptions WHERE last_seen < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("pruning stale push subscriptions: %w", err)
	}
	return result.RowsAffected(), nil
}

// SubscriptionStore adapts the pool to the interface the push notifier
// consumes, keeping the notifier constructible with a fake in tests.
type SubscriptionStore struct {
	Pool *pgxpool.Pool
}

func (s *SubscriptionStore) ListByUser(ctx context.Context, userID string) ([]models.PushSubscription, error) {
	return GetPushSubscriptionsByUserID(ctx, s.Pool, userID)
}

func (s *SubscriptionStore) Delete(ctx context.Context, endpointID string) error {
	return DeletePushSubscription(ctx, s.Pool, endpointID)
}
