// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today, possibly more
// later). Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
