// Package jwt issues and validates the signed session tokens that prove a
// recent successful authentication.
//
// Tokens are HS256 JWTs carrying the account email as subject, the display
// name, and a seven-day expiry. They are stateless and self-contained: there
// is no server-side session table, so possession of a valid token is the sole
// proof of identity and revocation before expiry is not possible. API
// consumers must treat "logout" as a client-side discard.
package jwt
