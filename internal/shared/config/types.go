package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// EmailConfig selects how notification copies leave the process. Transport "smtp"
// sends inline, "kafka" hands messages to the mail worker, "none" disables email.
type EmailConfig struct {
	Transport    string `mapstructure:"transport"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AppURL       string `mapstructure:"app_url"`
}

// Enabled reports whether outbound mail is configured at all.
func (e *EmailConfig) Enabled() bool {
	switch e.Transport {
	case "kafka":
		return true
	case "smtp":
		return e.SMTPHost != "" && e.SMTPUser != "" && e.SMTPPassword != ""
	default:
		return false
	}
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	Folder    string `mapstructure:"folder"`
}

type StorageConfig struct {
	Driver     string           `mapstructure:"driver"`
	LocalDir   string           `mapstructure:"local_dir"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
}

type KafkaConfig struct {
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	GroupID  string   `mapstructure:"group_id"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	UseTLS   bool     `mapstructure:"use_tls"`
}

type RateLimitConfig struct {
	CreateTicketPerMinute int `mapstructure:"create_ticket_per_minute"`
	LoginPerMinute        int `mapstructure:"login_per_minute"`
}

type CacheConfig struct {
	ReferenceTTLSeconds int `mapstructure:"reference_ttl_seconds"`
}

func (c *CacheConfig) ReferenceTTL() time.Duration {
	return time.Duration(c.ReferenceTTLSeconds) * time.Second
}

type SchedulerConfig struct {
	Enabled                   bool   `mapstructure:"enabled"`
	Timezone                  string `mapstructure:"timezone"`
	OrphanBlobGraceMinutes    int    `mapstructure:"orphan_blob_grace_minutes"`
	NotificationRetentionDays int    `mapstructure:"notification_retention_days"`
}
