package smtp

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/moviesir-api/internal/config"
)

// Mailer delivers registration verification codes.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendVerificationCode(to, code string) error {
	subject := "MovieSir email verification"
	body := fmt.Sprintf("Your verification code is %s.\r\nEnter it in the sign-up form to confirm this address.", code)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

// NewLogMailer returns a Mailer that only records the send attempt. Used in
// development so the full flow works without an SMTP server.
func NewLogMailer() Mailer {
	return logMailer{}
}

type logMailer struct{}

func (logMailer) SendVerificationCode(to, code string) error {
	slog.Info("verification code issued (dev mailer)", "to", to, "code", code)
	return nil
}
