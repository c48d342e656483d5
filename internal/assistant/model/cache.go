package model

import "context"

// ResponseCache is the time-bounded response store keyed by normalized
// message text. Keys are pure functions of the message, so cached responses
// are shared across conversations.
type ResponseCache interface {
	// Lookup returns the cached response for the message, or nil when
	// absent or expired. Stale entries are never returned.
	Lookup(ctx context.Context, message string) (*Response, error)

	// Store saves the response under the message's normalized key.
	Store(ctx context.Context, message string, resp *Response) error
}
