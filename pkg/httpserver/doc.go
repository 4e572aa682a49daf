// Package httpserver wraps net/http with graceful shutdown and
// environment-driven configuration for the storefront backend.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails; in the first two cases in-flight requests are drained within
// the shutdown timeout before Run returns.
package httpserver
