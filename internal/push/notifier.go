package push

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/daniilgb/budgetwise/models"
)

// SubscriptionStore is the slice of the storage layer the notifier needs.
type SubscriptionStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.PushSubscription, error)
	Delete(ctx context.Context, endpointID string) error
}

// Notification is the payload shown by the service worker.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier fans a notification out to every device a user has registered.
type Notifier struct {
	store  SubscriptionStore
	sender Sender
	log    zerolog.Logger
}

func NewNotifier(store SubscriptionStore, sender Sender, log zerolog.Logger) *Notifier {
	return &Notifier{store: store, sender: sender, log: log}
}

// Broadcast sends the notification to each of the user's subscriptions
// independently. A failed send against one endpoint does not block the
// others. Expired endpoints are deleted as a side effect of that send;
// transient failures are logged and dropped. Broadcast never reports an
// error to its caller, so a notification failure cannot fail the operation
// that triggered it.
func (n *Notifier) Broadcast(ctx context.Context, userID string, note Notification) {
	subs, err := n.store.ListByUser(ctx, userID)
	if err != nil {
		n.log.Warn().Err(err).Str("user_id", userID).Msg("could not load push subscriptions")
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(note)
	if err != nil {
		n.log.Warn().Err(err).Msg("could not encode push payload")
		return
	}

	for _, sub := range subs {
		result := n.sender.Send(ctx, sub, payload)
		switch result {
		case Delivered:
			n.log.Debug().Str("endpoint_id", sub.EndpointID).Msg("push delivered")
		case Expired:
			if err := n.store.Delete(ctx, sub.EndpointID); err != nil {
				n.log.Warn().Err(err).Str("endpoint_id", sub.EndpointID).Msg("could not delete expired subscription")
			} else {
				n.log.Info().Str("endpoint_id", sub.EndpointID).Msg("deleted expired push subscription")
			}
		case TransientFailure:
			n.log.Warn().Str("endpoint_id", sub.EndpointID).Msg("push delivery failed")
		}
	}
}
