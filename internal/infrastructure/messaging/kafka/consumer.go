package kafka

import (
	"context"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// Sender delivers one decoded message, typically an SMTP mailer.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// MailConsumer reads the outbox topic and hands each message to a Sender.
// Offsets are committed after the send attempt, so a malformed or undeliverable
// message is logged and skipped rather than retried forever.
type MailConsumer struct {
	reader *kafka.Reader
	sender Sender
	logger logger.Interface
}

func NewMailConsumer(cfg config.KafkaConfig, sender Sender, logger logger.Interface) *MailConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		Dialer:   newDialer(cfg),
	})

	return &MailConsumer{
		reader: reader,
		sender: sender,
		logger: logger.Named("mail-consumer"),
	}
}

// Run blocks until ctx is cancelled or the reader is closed.
func (c *MailConsumer) Run(ctx context.Context) error {
	c.logger.Infow("mail consumer started", "topic", c.reader.Config().Topic)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Infow("mail consumer stopped")
				return nil
			}
			c.logger.Errorw("failed to fetch mail message", "error", err)
			return err
		}

		c.handle(ctx, msg.Value)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warnw("failed to commit mail offset", "offset", msg.Offset, "error", err)
		}
	}
}

func (c *MailConsumer) handle(ctx context.Context, value []byte) {
	m, err := decodeMailMessage(value)
	if err != nil {
		c.logger.Warnw("skipping malformed mail message", "error", err)
		return
	}

	if err := c.sender.Send(ctx, m.To, m.Subject, m.HTML); err != nil {
		c.logger.Errorw("failed to send queued mail", "to", m.To, "subject", m.Subject, "error", err)
		return
	}
	c.logger.Infow("queued mail sent", "to", m.To, "subject", m.Subject)
}

func (c *MailConsumer) Close() error {
	return c.reader.Close()
}
