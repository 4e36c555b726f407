package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// Mailer publishes mail to the outbox topic instead of sending it. It satisfies
// email.Mailer.
type Mailer struct {
	writer *kafka.Writer
	logger logger.Interface
}

func NewMailer(cfg config.KafkaConfig, logger logger.Interface) *Mailer {
	return &Mailer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Transport:    newTransport(cfg),
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Send keys the message by recipient so one user's mail stays ordered.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	payload, err := encodeMailMessage(newMailMessage(to, subject, html))
	if err != nil {
		return fmt.Errorf("failed to encode mail message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(to),
		Value: payload,
		Time:  time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to publish mail message: %w", err)
	}

	m.logger.Debugw("mail queued", "to", to, "subject", subject)
	return nil
}

func (m *Mailer) Close() error {
	return m.writer.Close()
}
