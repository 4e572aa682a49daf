// Package mpesa is a thin client for the Daraja STK-push API.
//
// A push is fire-and-forget from the caller's point of view: the client
// fetches an OAuth access token, submits the processrequest payload and
// reports whether the gateway accepted the push. Settlement happens out of
// band via the configured callback URL.
package mpesa
