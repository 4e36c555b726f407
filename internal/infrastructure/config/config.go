package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/compiler-aditya/PropTech/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	Kafka     sharedConfig.KafkaConfig     `mapstructure:"kafka"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
	Cache     sharedConfig.CacheConfig     `mapstructure:"cache"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables. A missing config
// file is not an error; defaults and PROPTECH_* variables still apply.
func Load(env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("PROPTECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects combinations that cannot start.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("storage.local_dir is required for the local driver")
		}
	case "cloudinary":
		cl := c.Storage.Cloudinary
		if cl.CloudName == "" || cl.APIKey == "" || cl.APISecret == "" {
			return fmt.Errorf("storage.cloudinary credentials are required for the cloudinary driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	switch c.Email.Transport {
	case "smtp", "none", "":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.brokers and kafka.topic are required for the kafka mail transport")
		}
	default:
		return fmt.Errorf("unknown email transport: %q", c.Email.Transport)
	}

	if c.Server.Mode == "release" && c.Auth.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("auth.jwt.secret must be changed in release mode")
	}
	return nil
}

const defaultJWTSecret = "change-me-in-production"

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "proptech_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", defaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24)

	// Email defaults
	v.SetDefault("email.transport", "none")
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@proptech.local")
	v.SetDefault("email.from_name", "PropTech Maintenance")
	v.SetDefault("email.app_url", "http://localhost:3000")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Storage defaults
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local_dir", "./data")
	v.SetDefault("storage.cloudinary.folder", "proptech")

	// Kafka defaults
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "proptech.mail")
	v.SetDefault("kafka.group_id", "proptech-mail-worker")

	// Rate limit defaults
	v.SetDefault("rate_limit.create_ticket_per_minute", 10)
	v.SetDefault("rate_limit.login_per_minute", 5)

	// Cache defaults
	v.SetDefault("cache.reference_ttl_seconds", 300)

	// Scheduler defaults
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.orphan_blob_grace_minutes", 60)
	v.SetDefault("scheduler.notification_retention_days", 90)
}
