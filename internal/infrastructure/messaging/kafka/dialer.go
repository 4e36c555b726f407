package kafka

import (
	"crypto/tls"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
)

func saslMechanism(cfg config.KafkaConfig) sasl.Mechanism {
	if cfg.Username == "" {
		return nil
	}
	return plain.Mechanism{
		Username: cfg.Username,
		Password: cfg.Password,
	}
}

func tlsConfig(cfg config.KafkaConfig) *tls.Config {
	if !cfg.UseTLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

func newTransport(cfg config.KafkaConfig) *kafka.Transport {
	return &kafka.Transport{
		SASL: saslMechanism(cfg),
		TLS:  tlsConfig(cfg),
	}
}

func newDialer(cfg config.KafkaConfig) *kafka.Dialer {
	return &kafka.Dialer{
		Timeout:       10 * time.Second,
		DualStack:     true,
		TLS:           tlsConfig(cfg),
		SASLMechanism: saslMechanism(cfg),
	}
}
