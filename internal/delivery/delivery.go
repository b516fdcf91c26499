// Package delivery defines the transport entry points started by the binaries under cmd.
package delivery

import "context"

// Delivery is a long-running server that accepts requests until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
