// Package delivery defines the contract every transport entry point
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
