// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Nathal25/LUMIX-BACKEND/internal/config"
)

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

// SendPasswordReset mails the reset link. The link embeds the single-use
// token and expires with it.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	if m.host == "" {
		return fmt.Errorf("mail: smtp host not configured")
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: LUMIX <%s>\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString("Subject: Reset your LUMIX password\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("We received a request to reset your password.\r\n\r\n")
	msg.WriteString("Open this link within the next hour to choose a new one:\r\n")
	msg.WriteString(resetLink + "\r\n\r\n")
	msg.WriteString("If you did not request this, you can ignore this email.\r\n")

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
