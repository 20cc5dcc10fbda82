package services

import (
	"fmt"
	"net/smtp"

	"github.com/battersup/battersup-api/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendSignupCode(to, leagueName, role, code, joinURL string) error {
	subject := fmt.Sprintf("Your invitation to join %s", leagueName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>League Invitation</h2>
			<p>Hi,</p>
			<p>You've been invited to join <strong>%s</strong> as a <strong>%s</strong>.</p>
			<p>Your signup code is <strong>%s</strong>.</p>
			<p><a href="%s">Click here to join</a>, or enter the code in the BattersUp app.</p>
		</body>
		</html>
	`, leagueName, role, code, joinURL)

	return s.Send(to, subject, body)
}
