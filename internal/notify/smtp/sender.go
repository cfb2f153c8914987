// Package smtp delivers notifications over SMTPS using go-mail.
package smtp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"vincula/internal/notify"
	"vincula/internal/platform/config"
)

// Sender implements notify.Sender over an authenticated SMTPS connection.
type Sender struct {
	cfg config.SMTP
}

// New builds an SMTP sender from config. The connection is dialed per send;
// volumes are single-user interactive sessions, not bulk mail.
func New(cfg config.SMTP) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, msg notify.Message) error {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("set sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	if msg.Attachment != nil {
		m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Content))
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSSLPort(false),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
