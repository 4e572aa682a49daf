// Package auth implements the identity subsystem of the storefront backend:
// password and Google sign-in, session token issuance, and the time-bounded
// password-recovery flow.
//
// The package owns the identity invariants. Every committed account carries
// at least one credential (a password hash or a linked Google subject), email
// is the unique natural key, and a reset token is only honored while its
// stored expiry has not passed. Persistence is behind the UserStorage
// interface; the Mongo implementation lives in internal/storage/mongodb.
package auth
