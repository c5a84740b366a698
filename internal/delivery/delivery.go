// Package delivery holds the transports that expose the auth usecases.
package delivery

import "context"

// Delivery is a long-running transport started by the application after fx wiring.
type Delivery interface {
	// Serve blocks until the transport stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
