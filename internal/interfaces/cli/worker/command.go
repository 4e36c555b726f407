// Package worker runs the mail outbox consumer: email copies published to
// kafka by the API are delivered over SMTP here.
package worker

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/config"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/email"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/messaging/kafka"
	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/server"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Deliver queued notification emails",
		Long:  `Consume the kafka mail topic and send each message over SMTP.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(server.MapEnvToGinMode(env))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.brokers and kafka.topic must be set to run the mail worker")
	}
	if cfg.Email.SMTPHost == "" {
		return fmt.Errorf("email.smtp_host must be set to run the mail worker")
	}

	sender := email.NewSMTPMailer(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	}, markdown.NewService())

	consumer := kafka.NewMailConsumer(cfg.Kafka, sender, log)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Warnw("failed to close mail consumer", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("mail worker started",
		"brokers", cfg.Kafka.Brokers,
		"topic", cfg.Kafka.Topic,
		"group_id", cfg.Kafka.GroupID)

	if err := consumer.Run(ctx); err != nil {
		return fmt.Errorf("mail consumer failed: %w", err)
	}

	log.Infow("mail worker stopped")
	return nil
}
