// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application, such as the HTTP API.
// Serve blocks until the surface is shut down or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
