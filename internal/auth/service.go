package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yettapastries/storefront/pkg/jwt"
	"github.com/yettapastries/storefront/pkg/logger"
)

// Service orchestrates signup, password login, and Google sign-in. Every
// successful authentication ends with a freshly issued session token; tokens
// are never persisted.
type Service struct {
	storage  UserStorage
	hasher   PasswordHasher
	sessions *jwt.Service
	google   GoogleVerifier
	logger   *slog.Logger
}

// Option configures the authentication service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the authentication service.
func NewService(storage UserStorage, hasher PasswordHasher, sessions *jwt.Service, google GoogleVerifier, opts ...Option) *Service {
	s := &Service{
		storage:  storage,
		hasher:   hasher,
		sessions: sessions,
		google:   google,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup registers a new password-based account and signs it in.
// A taken email yields ErrEmailTaken; the storage layer's unique index is
// the authoritative check, the preceding lookup only gives a friendlier
// fast path.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	if _, err := s.storage.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.storage.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("user_id", user.ID),
		slog.String("method", "password"),
	)

	return s.signIn(user)
}

// Login authenticates an account by email and password.
//
// Any failure except the password-less account case yields
// ErrInvalidCredentials, so responses do not reveal whether the email is
// registered.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.storage.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" {
		// Google-only account. Telling the caller to use Google sign-in is
		// operationally necessary guidance, not an existence leak about
		// arbitrary accounts.
		return nil, ErrPasswordLoginUnavailable
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// A stored hash we cannot parse is logged for operators but reported
		// to the caller as a plain credential mismatch.
		s.logger.ErrorContext(ctx, "stored password hash unreadable",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(user)
}

// GoogleLogin validates a provider-issued credential and resolves it to an
// account: an already linked account is used directly, an account with the
// same email is linked, and otherwise a new password-less account is created.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*AuthResult, error) {
	identity, err := s.google.VerifyCredential(ctx, credential)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.FindByGoogleID(ctx, identity.Sub)
	switch {
	case err == nil:
		// Already linked.
	case errors.Is(err, ErrUserNotFound):
		user, err = s.resolveUnlinkedGoogleIdentity(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to look up google account: %w", err)
	}

	return s.signIn(user)
}

// resolveUnlinkedGoogleIdentity handles a verified Google identity with no
// linked account: it links an existing account sharing the verified email,
// or creates a new one.
func (s *Service) resolveUnlinkedGoogleIdentity(ctx context.Context, identity *GoogleIdentity) (*User, error) {
	existing, err := s.storage.FindByEmail(ctx, identity.Email)
	if err == nil {
		return s.linkGoogleIdentity(ctx, existing, identity)
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up account for linking: %w", err)
	}

	name := identity.Name
	if name == "" {
		name = defaultGoogleName
	}

	user := &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    identity.Email,
		GoogleID: identity.Sub,
	}

	if err := s.storage.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("user_id", user.ID),
		slog.String("method", "google"),
	)

	return user, nil
}

// linkGoogleIdentity merges a verified Google identity into an existing
// account registered with the same email.
//
// This rests on a single trust decision: an email verified by Google is
// treated as proof of ownership of the account holding that email. The
// merge is kept in one place and audited so the policy can be hardened
// independently, e.g. by requiring confirmation before linking.
func (s *Service) linkGoogleIdentity(ctx context.Context, user *User, identity *GoogleIdentity) (*User, error) {
	if err := s.storage.LinkGoogleID(ctx, user.Email, identity.Sub); err != nil {
		return nil, fmt.Errorf("failed to link google account: %w", err)
	}

	s.logger.InfoContext(ctx, "google identity linked to existing account",
		slog.String("user_id", user.ID),
		slog.String("google_sub", identity.Sub),
	)

	user.GoogleID = identity.Sub
	return user, nil
}

// signIn issues a session token for the user and assembles the result.
func (s *Service) signIn(user *User) (*AuthResult, error) {
	token, err := s.sessions.Issue(user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResult{
		Token: token,
		User:  user.Public(),
	}, nil
}
