package auth

import "strings"

// defaultGoogleName is used when Google omits a display name for a new
// account. Kept from the original product behavior.
const defaultGoogleName = "Google User"

// User is the durable identity record keyed by email.
//
// Optional fields use the zero value as "absent": a Google-only account has
// an empty PasswordHash, and outside an active recovery window both
// ResetToken and ResetTokenExpiry are zero. A committed record always has at
// least one of PasswordHash or GoogleID set.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	GoogleID         string
	ResetToken       string
	ResetTokenExpiry int64 // epoch milliseconds; set if and only if ResetToken is set
}

// Public returns the projection of the user that is safe to hand to clients.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// PublicUser is the client-facing view of an account with all credential
// fields stripped.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult pairs a freshly issued session token with the authenticated
// account's public projection.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// normalizeEmail lowercases and trims the address so lookups and the unique
// index agree on a single canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
