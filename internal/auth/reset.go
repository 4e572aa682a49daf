package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yettapastries/storefront/pkg/email"
	"github.com/yettapastries/storefront/pkg/logger"
)

// ResetAcknowledgement is returned for every reset request regardless of
// whether the email is registered, so responses cannot be used to probe for
// accounts.
const ResetAcknowledgement = "If an account exists with this email, a reset link has been sent."

// ResetConfig holds the password-recovery settings.
type ResetConfig struct {
	// LinkBaseURL is the frontend page that consumes the token; the token is
	// appended as a query parameter.
	LinkBaseURL string        `env:"RESET_LINK_BASE_URL" envDefault:"http://localhost:5173/reset-password"`
	TokenTTL    time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
}

// ResetService runs the forgot/reset password flow. Per identity the flow is
// a small state machine: no active reset, then an issued token with expiry,
// ending in consumption or lazy invalidation once the expiry passes. Expired
// tokens are never swept; they are rejected when presented.
type ResetService struct {
	storage UserStorage
	hasher  PasswordHasher
	mailer  email.Sender
	cfg     ResetConfig
	logger  *slog.Logger
}

// ResetOption configures the reset service.
type ResetOption func(*ResetService)

// WithResetLogger sets a custom logger for the service.
func WithResetLogger(l *slog.Logger) ResetOption {
	return func(s *ResetService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewResetService creates the password-reset service.
func NewResetService(storage UserStorage, hasher PasswordHasher, mailer email.Sender, cfg ResetConfig, opts ...ResetOption) *ResetService {
	s := &ResetService{
		storage: storage,
		hasher:  hasher,
		mailer:  mailer,
		cfg:     cfg,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestReset issues a recovery token for the account and hands the reset
// link to the mailer. The acknowledgement text is identical whether or not
// the email is registered; only a storage failure surfaces as an error.
func (s *ResetService) RequestReset(ctx context.Context, emailAddr string) (string, error) {
	emailAddr = normalizeEmail(emailAddr)

	user, err := s.storage.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.InfoContext(ctx, "reset requested for unknown email")
			return ResetAcknowledgement, nil
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token := uuid.NewString()
	expiry := time.Now().Add(s.cfg.TokenTTL).UnixMilli()

	if err := s.storage.SetResetToken(ctx, user.Email, token, expiry); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s?token=%s", s.cfg.LinkBaseURL, token)
	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   user.Email,
		Subject:  "Reset your password",
		BodyHTML: fmt.Sprintf(`<p>Click <a href="%s">here</a> to reset your password. The link expires in one hour.</p>`, link),
		Tag:      "password-reset",
	}); err != nil {
		// Delivery is best effort; the acknowledgement must not change.
		s.logger.ErrorContext(ctx, "failed to deliver reset email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	return ResetAcknowledgement, nil
}

// CompleteReset consumes a recovery token and replaces the account password.
// The hash replacement and token clearing happen in one storage update, so a
// consumed token can never be replayed.
func (s *ResetService) CompleteReset(ctx context.Context, token, newPassword string) error {
	user, err := s.storage.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if user.ResetTokenExpiry == 0 {
		return ErrResetStateInvalid
	}
	if time.Now().UnixMilli() > user.ResetTokenExpiry {
		return ErrResetTokenExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.storage.ResetPassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset completed", slog.String("user_id", user.ID))
	return nil
}
