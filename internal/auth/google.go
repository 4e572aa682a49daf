package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleConfig holds the verification endpoint for Google sign-in credentials.
type GoogleConfig struct {
	TokenInfoURL string        `env:"GOOGLE_TOKENINFO_URL" envDefault:"https://oauth2.googleapis.com/tokeninfo"`
	Timeout      time.Duration `env:"GOOGLE_VERIFY_TIMEOUT" envDefault:"10s"`
}

// GoogleIdentity is the verified identity extracted from a Google credential.
// Sub is Google's stable subject identifier; Name may be empty when the
// provider omits it.
type GoogleIdentity struct {
	Email string
	Name  string
	Sub   string
}

// GoogleVerifier validates a provider-issued credential and returns the
// verified identity.
type GoogleVerifier interface {
	VerifyCredential(ctx context.Context, credential string) (*GoogleIdentity, error)
}

// TokenInfoVerifier verifies Google ID tokens against the tokeninfo endpoint.
// The response is parsed into a fixed schema and rejected when required
// fields are missing; partially-parsed data never reaches the identity store.
type TokenInfoVerifier struct {
	endpoint string
	client   *http.Client
}

// NewTokenInfoVerifier creates a verifier for the configured endpoint.
func NewTokenInfoVerifier(cfg GoogleConfig) *TokenInfoVerifier {
	return &TokenInfoVerifier{
		endpoint: cfg.TokenInfoURL,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// tokenInfoResponse is the subset of the tokeninfo payload this service
// consumes. Anything else Google returns is ignored.
type tokenInfoResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Sub   string `json:"sub"`
}

// VerifyCredential asks Google whether the credential is valid.
// A rejection by Google yields ErrGoogleTokenInvalid; transport failures and
// unparseable responses yield ErrGoogleUnavailable.
func (v *TokenInfoVerifier) VerifyCredential(ctx context.Context, credential string) (*GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoogleUnavailable, err)
	}
	req.URL.RawQuery = url.Values{"id_token": {credential}}.Encode()

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoogleUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrGoogleTokenInvalid, resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoogleUnavailable, err)
	}

	if info.Email == "" || info.Sub == "" {
		return nil, fmt.Errorf("%w: response missing required claims", ErrGoogleUnavailable)
	}

	return &GoogleIdentity{
		Email: normalizeEmail(info.Email),
		Name:  info.Name,
		Sub:   info.Sub,
	}, nil
}
