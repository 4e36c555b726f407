// Package email delivers notification copies by SMTP, directly or through the
// Kafka mail outbox.
package email

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// Mailer sends one HTML message. Callers treat it as fire-and-forget.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// NopMailer drops every message. It is selected when email is disabled.
type NopMailer struct {
	logger logger.Interface
}

func NewNopMailer(logger logger.Interface) *NopMailer {
	return &NopMailer{logger: logger}
}

func (m *NopMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Debugw("email disabled, message dropped", "to", to, "subject", subject)
	return nil
}
