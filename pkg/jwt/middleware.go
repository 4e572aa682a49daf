package jwt

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Middleware validates the Bearer session token on every request and injects
// the verified claims into the request context for downstream handlers.
//
// A missing header, invalid signature, or expired token all yield the same
// 401 response; the distinction is internal only. The middleware extracts
// identity, nothing more - there are no resource-level permission checks.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := BearerTokenExtractor(r)
			if err != nil {
				unauthorized(w, "No authorization header")
				return
			}

			claims, err := service.Verify(tokenString)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			ctx := r.Context()
			ctx = SetToken(ctx, tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>"
// headers per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
