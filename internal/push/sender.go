package push

import (
	"context"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/daniilgb/budgetwise/models"
)

// Sender delivers one payload to one device endpoint.
type Sender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload []byte) Result
}

// WebPushSender sends VAPID-signed web-push messages.
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
}

func NewWebPushSender(publicKey, privateKey, subscriber string) *WebPushSender {
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		ttl:        60,
	}
}

func (s *WebPushSender) Send(ctx context.Context, sub models.PushSubscription, payload []byte) Result {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Keys.Auth,
			P256dh: sub.Keys.P256dh,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             s.ttl,
	})
	if err != nil {
		return TransientFailure
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return Expired
	case resp.StatusCode >= 400:
		return TransientFailure
	default:
		return Delivered
	}
}
