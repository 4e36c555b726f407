package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/compiler-aditya/PropTech/internal/application/maintenance"
	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/auth"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/cache"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/config"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/email"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/messaging/kafka"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/permission"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/ratelimit"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/scheduler"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/storage"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/middleware"
	"github.com/compiler-aditya/PropTech/internal/shared/db"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Basic Services
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	if c.redis != nil {
		c.refCache = cache.NewRedisReferenceCache(c.redis, cfg.Cache.ReferenceTTL(), log)
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.refCache = cache.NoopReferenceCache{}
		c.limiter = ratelimit.NoopRateLimiter{}
	}

	c.repos = newRepositories(c.db, log)
	c.txManager = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewService()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	blobs, err := storage.New(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	c.blobs = blobs

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(c.limiter, log)
	return nil
}

// initRedis connects to Redis. A missing host or a failed ping returns nil and
// the caller falls back to the no-op cache and limiter.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if cfg.Redis.Host == "" {
		log.Infow("redis not configured, reference cache and rate limiting disabled")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, continuing without it", "error", err, "addr", cfg.Redis.GetAddr())
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// ============================================================
// Section 2: Notifications - Mail Transport, Renderer, Dispatcher
// ============================================================

func (c *Container) initNotifications() {
	cfg := c.cfg
	log := c.log

	var mailer appnotification.Mailer
	switch {
	case !cfg.Email.Enabled():
		log.Infow("email transport disabled, notifications stay in-app only")
		mailer = email.NewNopMailer(log)
	case cfg.Email.Transport == "kafka":
		c.kafkaMailer = kafka.NewMailer(cfg.Kafka, log)
		mailer = c.kafkaMailer
		log.Infow("email copies published to kafka", "topic", cfg.Kafka.Topic)
	default:
		mailer = email.NewSMTPMailer(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		}, c.markdown)
		log.Infow("email copies sent over smtp", "host", cfg.Email.SMTPHost)
	}

	renderer := email.NewNotificationTemplate(cfg.Email.AppURL, c.markdown)
	c.dispatcher = appnotification.NewDispatcher(c.repos.notificationRepo, c.repos.userRepo, mailer, renderer, log)
}

// ============================================================
// Section 3: Authorization - Casbin Policies, Permission Middleware
// ============================================================

func (c *Container) initAuthorization() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPolicies(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	return nil
}

// ============================================================
// Section 4: Scheduler - Orphan Blob Sweep, Notification Retention
// ============================================================

func (c *Container) initScheduler() error {
	cfg := c.cfg.Scheduler
	log := c.log

	if !cfg.Enabled {
		log.Infow("scheduler disabled")
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if lister, ok := c.blobs.(storage.Lister); ok {
		sweep := maintenance.NewOrphanBlobSweep(
			lister, c.blobs,
			maintenance.StorageURLSources{
				c.repos.attachmentRepo,
				maintenance.StorageURLFunc(c.repos.userRepo.ListAvatarURLs),
			},
			time.Duration(cfg.OrphanBlobGraceMinutes)*time.Minute, log,
		)
		if err := manager.RegisterOrphanBlobSweep(sweep); err != nil {
			return fmt.Errorf("failed to register orphan blob sweep: %w", err)
		}
	} else {
		log.Infow("blob store cannot list blobs, orphan sweep not scheduled")
	}

	retention := maintenance.NewNotificationRetention(
		c.repos.notificationRepo,
		time.Duration(cfg.NotificationRetentionDays)*24*time.Hour,
	)
	if err := manager.RegisterNotificationRetention(retention); err != nil {
		return fmt.Errorf("failed to register notification retention: %w", err)
	}

	c.schedulerManager = manager
	return nil
}
