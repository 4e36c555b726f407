package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/notification"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
