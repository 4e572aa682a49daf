// Package handler is the HTTP boundary of the storefront API.
//
// Handlers decode requests, call services and translate domain errors into
// status codes and {message} bodies. Internal failure details are logged
// here and never written to responses.
package handler
