package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/auth"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/cache"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/config"
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

// referenceCache is satisfied by both the Redis and no-op reference caches.
type referenceCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

var (
	_ referenceCache = (*cache.RedisReferenceCache)(nil)
	_ referenceCache = cache.NoopReferenceCache{}
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware

	// Shared services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	txManager *db.TransactionManager
	markdown  markdown.Service
	refCache  referenceCache
	limiter   ratelimit.RateLimiter
	blobs     storage.BlobStore
	enforcer  *permission.Enforcer

	// Notification fan-out
	dispatcher  *appnotification.Dispatcher
	kafkaMailer *kafka.Mailer

	// Background jobs
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
// Sections run in dependency order.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Basic Services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Notifications - Mail Transport, Renderer, Dispatcher
	c.initNotifications()

	// Section 3: Authorization - Casbin Policies, Permission Middleware
	if err := c.initAuthorization(); err != nil {
		return nil, err
	}

	// Section 4: Use cases and handlers
	c.initUseCases()
	c.initHandlers()

	// Section 5: Scheduler - Orphan Blob Sweep, Notification Retention
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// GetEngine returns the gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// StartScheduler starts the maintenance jobs when the scheduler is enabled.
func (c *Container) StartScheduler() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs, waits for in-flight email copies until ctx
// expires, and closes outbound connections.
func (c *Container) Shutdown(ctx context.Context) {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.dispatcher != nil {
		done := make(chan struct{})
		go func() {
			c.dispatcher.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			c.log.Warnw("gave up waiting for pending email copies", "error", ctx.Err())
		}
	}

	if c.kafkaMailer != nil {
		if err := c.kafkaMailer.Close(); err != nil {
			c.log.Errorw("failed to close kafka mailer", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}

	c.log.Infow("container shut down")
}
