// Package push handles web-push delivery to registered device endpoints.
// Every send is best-effort: delivery failures are logged and swallowed, and
// an endpoint the push service reports as gone is deleted rather than retried.
package push

// Result classifies the outcome of one delivery attempt.
type Result int

const (
	// Delivered means the push service accepted the message.
	Delivered Result = iota
	// Expired means the push service no longer knows the endpoint (404/410).
	// The subscription should be deleted, not retried.
	Expired
	// TransientFailure covers everything else: network errors, 5xx, rate
	// limits. The message is dropped; there is no retry queue.
	TransientFailure
)

func (r Result) String() string {
	switch r {
	case Delivered:
		return "delivered"
	case Expired:
		return "expired"
	default:
		return "transient_failure"
	}
}
