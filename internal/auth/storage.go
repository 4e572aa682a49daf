package auth

import "context"

// UserStorage defines the identity-store operations the auth services need.
// All operations act on a single document; the store provides no multi-field
// transactional guarantees beyond that.
//
// Lookup methods return ErrUserNotFound when no record matches. Create must
// return ErrEmailTaken when the unique email index rejects the insert; that
// duplicate-key signal, not a preceding existence check, is the source of
// truth for signup conflicts.
type UserStorage interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)

	Create(ctx context.Context, user *User) error

	// LinkGoogleID sets the Google subject on the account found by email.
	LinkGoogleID(ctx context.Context, email, googleID string) error

	// SetResetToken stores the recovery token and its expiry (epoch millis)
	// on the account found by email, replacing any active token.
	SetResetToken(ctx context.Context, email, token string, expiry int64) error

	// ResetPassword replaces the password hash and clears the reset token
	// pair in a single update.
	ResetPassword(ctx context.Context, id, newHash string) error
}
