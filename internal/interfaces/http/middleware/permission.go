package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/domain/permission"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// PermissionMiddleware gates routes on the role policies held by the enforcer.
type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := authorization.ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(actor.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err,
				"user_id", actor.ID,
				"role", actor.Role,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", actor.ID,
				"role", actor.Role,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
