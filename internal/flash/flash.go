// Package flash holds the one-shot notices shown after a redirect: success
// confirmations and the soft authorization denials. Notices are queued under
// a per-browser key and drained on the next page render.
package flash

import "context"

type Store interface {
	// Push appends a notice to the queue for key.
	Push(ctx context.Context, key, message string) error
	// PopAll returns and clears every queued notice for key.
	PopAll(ctx context.Context, key string) ([]string, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
