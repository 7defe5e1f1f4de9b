// infrastructure/mail/smtp_sender.go
package mail

import (
	"crypto/tls"
	"time"

	"github.com/altsora/SocialNetwork-sub000/domain/service"
	"github.com/altsora/SocialNetwork-sub000/pkg/configs"
	mailv2 "gopkg.in/mail.v2"
)

type smtpSender struct {
	config configs.SMTPConfig
}

// NewSMTPSender builds a MailSender over a plain SMTP dialer.
func NewSMTPSender(config configs.SMTPConfig) service.MailSender {
	return &smtpSender{config: config}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := mailv2.NewMessage()
	m.SetHeader("From", s.config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := mailv2.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	d.Timeout = 20 * time.Second
	d.TLSConfig = &tls.Config{ServerName: s.config.Host}

	return d.DialAndSend(m)
}
