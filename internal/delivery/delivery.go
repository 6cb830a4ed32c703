// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) satisfies so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until the
// context is cancelled or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
