package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// then shuts down gracefully. It returns early if the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for active requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
