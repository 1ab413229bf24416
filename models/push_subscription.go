package models

import (
	"strings"
	"time"
)

type SubscriptionKeys struct {
	Auth   string `json:"auth"`
	P256dh string `json:"p256dh"`
}

type PushSubscription struct {
	EndpointID  string           `json:"endpoint_id" db:"endpoint_id"`
	UserID      string           `json:"user_id" db:"user_id"`
	Endpoint    string           `json:"endpoint" db:"endpoint"`
	Keys        SubscriptionKeys `json:"keys" db:"keys"`
	IsIOSSafari bool             `json:"is_ios_safari" db:"is_ios_safari"`
	UserAgent   string           `json:"user_agent" db:"user_agent"`
	LastSeen    time.Time        `json:"last_seen" db:"last_seen"`
}

var endpointSanitizer = strings.NewReplacer(
	"/", "_",
	".", "_",
	":", "_",
	"#", "_",
	"$", "_",
	"[", "_",
	"]", "_",
)

// SanitizeEndpoint turns a push endpoint URL into a stable key. The same
// endpoint always maps to the same id, which is what makes subscription
// registration an idempotent upsert.
func SanitizeEndpoint(endpoint string) string {
	return endpointSanitizer.Replace(endpoint)
}
