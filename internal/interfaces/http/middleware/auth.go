package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/auth"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// SessionResolver turns a bearer token into the caller's session.
type SessionResolver interface {
	Resolve(token string) (*auth.Session, error)
}

type AuthMiddleware struct {
	sessions SessionResolver
	logger   logger.Interface
}

func NewAuthMiddleware(sessions SessionResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and places the
// resolved actor on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		session, err := m.sessions.Resolve(token)
		if err != nil {
			if errors.IsSecurityEvent(err) {
				m.logger.Warnw("rejected bearer token", "error", err, "client_ip", c.ClientIP())
			} else {
				m.logger.Debugw("rejected bearer token", "error", err)
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		authorization.SetActor(c, session.Actor)
		c.Next()
	}
}
