// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, waiting for the root context to be
// cancelled, and graceful shutdown that lets in-flight requests finish.
package server
