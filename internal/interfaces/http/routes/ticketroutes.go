package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/domain/permission"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/ratelimit"
	attachmenthandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/attachment"
	tickethandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/ticket"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AttachmentHandler    *attachmenthandlers.AttachmentHandler
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimitMiddleware
	CreateRule           ratelimit.Rule
}

// SetupTicketRoutes registers tickets and their attachments on an authenticated group.
func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := api.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			config.RateLimiter.Limit(config.CreateRule, middleware.ByUser("create_ticket")),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/assign",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionAssign),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			config.TicketHandler.UpdateTicketStatus)
		tickets.PATCH("/:id/priority",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionChangePriority),
			config.TicketHandler.UpdateTicketPriority)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.POST("/:id/attachments",
			config.AttachmentHandler.Upload)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
	}

	api.DELETE("/attachments/:id", config.AttachmentHandler.Remove)
	api.GET("/files/:id", config.AttachmentHandler.ServeFile)

	api.GET("/dashboard/stats", config.TicketHandler.DashboardStats)
}
