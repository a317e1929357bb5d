// Package config provides centralized timeout constants for the application.
//
// Lex waits at most a few seconds for a code hook to answer, so every
// fulfillment timeout here stays well under that.
package config

import "time"

// Fulfillment HTTP timeouts
const (
	// HTTPRead is the HTTP server read timeout.
	// Lex events are small JSON documents.
	HTTPRead = 5 * time.Second

	// HTTPWrite is the HTTP server write timeout.
	// Responses are built from in-memory tables.
	HTTPWrite = 5 * time.Second

	// HTTPIdle is the HTTP server idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight requests to complete before forceful termination.
	GracefulShutdown = 30 * time.Second
)
