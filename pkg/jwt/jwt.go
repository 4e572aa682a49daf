package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519.
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Header represents the JWT header as defined in RFC 7515.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// SessionClaims are the claims embedded in a storefront session token.
// Subject is the account email; Name is the display name at issuance time.
type SessionClaims struct {
	Subject   string `json:"sub"`
	Name      string `json:"name"`
	ExpiresAt int64  `json:"exp"`
}

// Valid checks the expiry claim against the current time.
// The comparison is exact; there is no clock-skew leeway.
func (c SessionClaims) Valid() error {
	if time.Now().Unix() > c.ExpiresAt {
		return ErrExpiredToken
	}
	return nil
}

// Config holds the signing secret consumed from the environment.
// The secret is required: a process without it must not start.
type Config struct {
	SigningSecret string `env:"JWT_SECRET,required"`
}

// Service handles session token generation and validation using HMAC-SHA256.
// The signing key is kept in memory only and should be cryptographically secure.
type Service struct {
	signingKey []byte
}

// New creates a session token service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromConfig creates a session token service from environment-driven configuration.
func NewFromConfig(cfg Config) (*Service, error) {
	return New([]byte(cfg.SigningSecret))
}

// Issue creates a signed session token for the given account.
// The expiry is set to now plus SessionTTL.
func (s *Service) Issue(email, name string) (string, error) {
	claims := SessionClaims{
		Subject:   email,
		Name:      name,
		ExpiresAt: time.Now().Add(SessionTTL).Unix(),
	}
	return s.generate(claims)
}

// Verify validates a session token and returns its claims.
// It fails with ErrInvalidSignature, ErrInvalidToken or ErrExpiredToken on
// signature mismatch, malformed structure, or expiry respectively.
func (s *Service) Verify(tokenString string) (SessionClaims, error) {
	var claims SessionClaims
	if err := s.parse(tokenString, &claims); err != nil {
		return SessionClaims{}, err
	}
	return claims, nil
}

// generate builds and signs a token with the given claims.
func (s *Service) generate(claims any) (string, error) {
	header := Header{
		Type:      HeaderType,
		Algorithm: HeaderAlgorithm,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// parse validates signature, algorithm, and temporal claims, then unmarshals
// the claims into the provided structure.
func (s *Service) parse(tokenString string, claims any) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	headerEncoded := parts[0]
	claimsEncoded := parts[1]
	signatureEncoded := parts[2]

	// Constant-time comparison prevents signature timing attacks.
	payload := headerEncoded + "." + claimsEncoded
	expectedSignature := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(signatureEncoded), []byte(expectedSignature)) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(headerEncoded)
	if err != nil {
		return ErrInvalidToken
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return ErrInvalidToken
	}

	// Reject tokens using unexpected algorithms to prevent algorithm confusion attacks.
	if header.Algorithm != HeaderAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(claimsEncoded)
	if err != nil {
		return ErrInvalidToken
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return ErrInvalidToken
	}

	if validator, ok := claims.(interface{ Valid() error }); ok {
		if err := validator.Valid(); err != nil {
			return err
		}
	}

	return nil
}

// sign creates a base64url-encoded HMAC-SHA256 signature for the payload.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding,
// as required by RFC 7515.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes base64url-encoded data without padding.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
