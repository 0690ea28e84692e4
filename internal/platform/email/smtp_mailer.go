package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

var _ Mailer = (*SMTPMailer)(nil)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SMTPMailer struct {
	from   string
	pass   string
	host   string
	port   int
	sender string
}

func NewSMTPMailer(cfg *SMTPConfig, sender string) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.User,
		pass:   cfg.Password,
		host:   cfg.Host,
		port:   cfg.Port,
		sender: sender,
	}
}

func (m *SMTPMailer) SendPlain(to []string, subject, body string) error {
	auth := smtp.PlainAuth("", m.from, m.pass, m.host)

	headers := "From: " + m.sender + "\r\n" +
		"To: " + strings.Join(to, ", ") + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n"

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, to, []byte(headers+body)); err != nil {
		return fmt.Errorf("smtp send to %d recipients: %w", len(to), err)
	}

	slog.Info("Email sent.")
	return nil
}
