// Package email delivers transactional mail for the storefront backend.
//
// The only mail the identity subsystem sends today is the password-reset
// link. Delivery is best effort at the call site: the reset flow constructs
// the message and hands it off, it does not guarantee delivery.
//
// Two senders are provided: a Postmark-backed client for real environments
// and a log sender for development that writes the message to the logger
// instead of sending it.
package email
