package http

import (
	"github.com/compiler-aditya/PropTech/internal/infrastructure/ratelimit"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/middleware"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.AccessLog(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimitMiddleware,
		LoginRule:      ratelimit.PerMinute(c.cfg.RateLimit.LoginPerMinute),
	})

	api := c.engine.Group("/api")
	api.Use(c.authMiddleware.RequireAuth())

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AttachmentHandler:    c.hdlrs.attachmentHandler,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimitMiddleware,
		CreateRule:           ratelimit.PerMinute(c.cfg.RateLimit.CreateTicketPerMinute),
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
	})

	routes.SetupProfileRoutes(api, &routes.ProfileRouteConfig{
		ProfileHandler: c.hdlrs.profileHandler,
	})

	routes.SetupPropertyRoutes(api, &routes.PropertyRouteConfig{
		PropertyHandler:      c.hdlrs.propertyHandler,
		UserHandler:          c.hdlrs.userHandler,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
