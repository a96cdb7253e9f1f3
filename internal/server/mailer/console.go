package mailer

import (
	"context"

	"github.com/avoronins/scoreboard/internal/logging"
)

// ConsoleNotifier logs messages instead of sending them. Used when no SMTP
// host is configured, so reset links stay visible during development.
type ConsoleNotifier struct {
	logger logging.Logger
}

func NewConsoleNotifier(logger logging.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger.With("module", "mailer")}
}

func (n *ConsoleNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.logger.Info(ctx, "dev email fallback",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
