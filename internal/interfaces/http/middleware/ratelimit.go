package middleware

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/ratelimit"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// KeyFunc derives the counter identity of a request. An empty key skips limiting.
type KeyFunc func(c *gin.Context) string

// ByClientIP counts per client address under scope.
func ByClientIP(scope string) KeyFunc {
	return func(c *gin.Context) string {
		return fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())
	}
}

// ByUser counts per authenticated user under scope. It must run after RequireAuth.
func ByUser(scope string) KeyFunc {
	return func(c *gin.Context) string {
		actor, ok := authorization.ActorFromContext(c)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s:user:%d", scope, actor.ID)
	}
}

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit enforces rule on the key produced by keyFn. When the limiter fails the
// request is let through so a Redis outage does not block all traffic.
func (m *RateLimitMiddleware) Limit(rule ratelimit.Rule, keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rule.Enabled() {
			c.Next()
			return
		}
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}

		result, err := m.limiter.Allow(c.Request.Context(), key, rule)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.ResetAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			m.logger.Warnw("rate limit exceeded", "key", key, "retry_after", retryAfter)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
