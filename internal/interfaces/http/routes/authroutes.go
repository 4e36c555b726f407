package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/ratelimit"
	userhandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/user"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimitMiddleware
	// LoginRule also caps sign-ups, counted separately per client.
	LoginRule ratelimit.Rule
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login",
			config.RateLimiter.Limit(config.LoginRule, middleware.ByClientIP("login")),
			config.UserHandler.Login)
		auth.POST("/register",
			config.RateLimiter.Limit(config.LoginRule, middleware.ByClientIP("register")),
			config.UserHandler.Register)
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.UserHandler.Me)
	}
}
