// Package delivery defines the contract every server implementation exposes
// to the application entrypoints.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
