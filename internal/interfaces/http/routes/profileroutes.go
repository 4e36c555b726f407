package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/user"
)

type ProfileRouteConfig struct {
	ProfileHandler *userhandlers.ProfileHandler
}

// SetupProfileRoutes registers the caller's own photo endpoints and the photo
// proxy every signed-in user may read.
func SetupProfileRoutes(api *gin.RouterGroup, config *ProfileRouteConfig) {
	profile := api.Group("/profile")
	{
		profile.PUT("/avatar", config.ProfileHandler.UpdateAvatar)
		profile.DELETE("/avatar", config.ProfileHandler.RemoveAvatar)
	}

	api.GET("/users/:id/avatar", config.ProfileHandler.ServeAvatar)
}
