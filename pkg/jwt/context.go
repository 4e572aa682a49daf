package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "session_token"}
	claimsContextKey = &contextKey{name: "session_claims"}
)

// SetToken stores the raw session token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims stores verified session claims in the context.
func SetClaims(ctx context.Context, claims SessionClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the raw session token string from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the verified session claims from the context.
// The second return value is false when the request was not authenticated.
func GetClaims(ctx context.Context) (SessionClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(SessionClaims)
	return claims, ok
}
