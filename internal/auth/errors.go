package auth

import "errors"

// Account errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")

	// ErrInvalidCredentials covers every password-login failure so responses
	// cannot be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordLoginUnavailable is the one sanctioned exception to the
	// anti-enumeration policy: the account exists but has no password, and
	// the caller needs to be told to use Google sign-in instead.
	ErrPasswordLoginUnavailable = errors.New("account has no password credential")
)

// Google sign-in errors
var (
	ErrGoogleTokenInvalid = errors.New("google credential rejected")
	ErrGoogleUnavailable  = errors.New("failed to verify credential with google")
)

// Password-reset errors
var (
	ErrResetTokenInvalid = errors.New("reset token invalid")
	ErrResetTokenExpired = errors.New("reset token expired")
	// ErrResetStateInvalid reports a token stored without an expiry, an
	// inconsistent state that should not occur; it is distinct for diagnosability.
	ErrResetStateInvalid = errors.New("reset token state invalid")
)

// Hashing errors
var (
	ErrMalformedHash = errors.New("malformed password hash")
)
