package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// ActorFromContext reads the actor placed on the gin context by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	id, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Actor{}, false
	}
	userID, ok := id.(uint)
	if !ok || userID == 0 {
		return Actor{}, false
	}
	return Actor{
		ID:   userID,
		Role: UserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}

// SetActor stores the actor on the gin context.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(constants.ContextKeyUserID, actor.ID)
	c.Set(constants.ContextKeyUserRole, actor.Role.String())
}

// RequireRole rejects requests whose actor holds none of the given roles.
func RequireRole(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		if !allowed[actor.Role] {
			utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
