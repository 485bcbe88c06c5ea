// Package delivery defines the interface every transport implementation exposes
// to the process bootstrap.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application bootstrap.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
