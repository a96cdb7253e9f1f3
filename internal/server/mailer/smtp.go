package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/avoronins/scoreboard/internal/server/config"
)

// SMTPNotifier delivers mail over SMTP with STARTTLS.
type SMTPNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	opts := []mail.Option{
		mail.WithPort(n.port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	}
	if n.user != "" && n.password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.user),
			mail.WithPassword(n.password),
		)
	}

	client, err := mail.NewClient(n.host, opts...)
	if err != nil {
		return fmt.Errorf("error creating smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}
	return nil
}
