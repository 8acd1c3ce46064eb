package service

import (
	"fmt"

	"kist-clinic-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional email. Only the password-reset flow sends
// mail today.
type Mailer interface {
	SendPasswordReset(to, name, resetURL string) error
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (m *smtpMailer) SendPasswordReset(to, name, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received a request to reset the password for your account.\n"+
			"Open the link below to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can safely ignore this email.\n",
		name, resetURL,
	))

	return m.dialer.DialAndSend(msg)
}
