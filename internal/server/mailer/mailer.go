// Package mailer delivers notification emails. Delivery is fire-and-forget
// from the caller's perspective; senders report errors but callers on
// enumeration-sensitive paths are expected to log and swallow them.
package mailer

import (
	"context"

	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/config"
)

// Notifier sends a plain-text message to a single recipient.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New selects a Notifier from config: SMTP when a host is configured,
// otherwise the console notifier used during development.
func New(cfg *config.Config, logger logging.Logger) Notifier {
	if cfg.SMTPHost == "" {
		return NewConsoleNotifier(logger)
	}
	return NewSMTPNotifier(cfg)
}
