// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a server started by main and stopped through its fx hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
