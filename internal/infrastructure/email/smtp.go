package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/compiler-aditya/PropTech/internal/shared/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
	md     markdown.Service
}

func NewSMTPMailer(config SMTPConfig, md markdown.Service) *SMTPMailer {
	if config.FromAddress == "" {
		config.FromAddress = config.Username
	}
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPMailer{
		config: config,
		dialer: dialer,
		md:     md,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.md.StripTags(htmlBody))
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
