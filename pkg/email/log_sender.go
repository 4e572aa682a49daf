package email

import (
	"context"
	"log/slog"
)

// LogSender implements Sender for local development.
// It writes the message to the logger instead of sending it, so reset links
// remain visible without a mail provider account.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a development email sender backed by the given logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendEmail logs the message instead of delivering it.
func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "outbound email (not sent)",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("body_html", params.BodyHTML),
		slog.String("tag", params.Tag),
	)
	return nil
}
