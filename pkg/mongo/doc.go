// Package mongo manages the MongoDB connection for the storefront backend.
//
// Configuration is environment-driven so deployments only differ by their
// environment variables. Connection setup retries a few times to ride out
// transient failures during startup, and the returned client's pool is safe
// for concurrent use by all request handlers.
package mongo
