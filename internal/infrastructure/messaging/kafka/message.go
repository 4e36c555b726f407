// Package kafka carries outgoing mail through a Kafka topic so the API process
// never blocks on SMTP.
package kafka

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// MailMessage is the wire format of the mail topic.
type MailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTML     string `json:"html"`
	QueuedAt int64  `json:"queued_at"`
}

func newMailMessage(to, subject, html string) MailMessage {
	return MailMessage{
		To:       to,
		Subject:  subject,
		HTML:     html,
		QueuedAt: biztime.ToUnixMilli(biztime.NowUTC()),
	}
}

func encodeMailMessage(m MailMessage) ([]byte, error) {
	return json.Marshal(m)
}

func decodeMailMessage(data []byte) (MailMessage, error) {
	var m MailMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return MailMessage{}, fmt.Errorf("failed to decode mail message: %w", err)
	}
	if strings.TrimSpace(m.To) == "" {
		return MailMessage{}, fmt.Errorf("mail message has no recipient")
	}
	return m, nil
}
