package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type recordingSender struct {
	sent []MailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, to, subject, html string) error {
	s.sent = append(s.sent, MailMessage{To: to, Subject: subject, HTML: html})
	return s.err
}

func TestMailMessageCodec(t *testing.T) {
	data, err := encodeMailMessage(newMailMessage("tom@example.com", "Ticket Updated", "<p>hi</p>"))
	require.NoError(t, err)

	got, err := decodeMailMessage(data)
	require.NoError(t, err)
	assert.Equal(t, "tom@example.com", got.To)
	assert.Equal(t, "Ticket Updated", got.Subject)
	assert.NotZero(t, got.QueuedAt)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"no recipient", `{"subject":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeMailMessage([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestMailConsumer_Handle(t *testing.T) {
	sender := &recordingSender{}
	c := &MailConsumer{sender: sender, logger: logger.NewLogger()}

	c.handle(context.Background(), []byte(`{"to":"a@example.com","subject":"s","html":"<p>x</p>"}`))
	c.handle(context.Background(), []byte(`garbage`))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "a@example.com", sender.sent[0].To)
}

func TestSASLAndTLSAreOptional(t *testing.T) {
	assert.Nil(t, saslMechanism(config.KafkaConfig{}))
	assert.Nil(t, tlsConfig(config.KafkaConfig{}))
	assert.NotNil(t, saslMechanism(config.KafkaConfig{Username: "u", Password: "p"}))
	assert.NotNil(t, tlsConfig(config.KafkaConfig{UseTLS: true}))
}
