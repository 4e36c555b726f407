package http

import (
	"context"

	attachmentHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/attachment"
	healthHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/health"
	notificationHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/notification"
	propertyHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/property"
	ticketHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/ticket"
	userHandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/user"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *healthHandlers.HealthHandler
	userHandler         *userHandlers.UserHandler
	profileHandler      *userHandlers.ProfileHandler
	propertyHandler     *propertyHandlers.PropertyHandler
	ticketHandler       *ticketHandlers.TicketHandler
	attachmentHandler   *attachmentHandlers.AttachmentHandler
	notificationHandler *notificationHandlers.NotificationHandler
}

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		healthHandler: healthHandlers.NewHealthHandler(c.healthChecks()),
		userHandler: userHandlers.NewUserHandler(
			ucs.loginUC, ucs.registerUC, ucs.getCurrentUserUC, ucs.listTechniciansUC, log,
		),
		profileHandler: userHandlers.NewProfileHandler(
			ucs.updateAvatarUC, ucs.removeAvatarUC, ucs.getAvatarUC, log,
		),
		propertyHandler: propertyHandlers.NewPropertyHandler(
			ucs.createPropertyUC, ucs.listPropertiesUC, ucs.listPropertyOptionsUC, ucs.getPropertyUC, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC, ucs.listTicketsUC, ucs.getTicketUC, ucs.assignTicketUC,
			ucs.changeStatusUC, ucs.changePriorityUC, ucs.addCommentUC, ucs.dashboardStatsUC,
			log,
		),
		attachmentHandler: attachmentHandlers.NewAttachmentHandler(
			ucs.uploadAttachmentsUC, ucs.removeAttachmentUC, ucs.getFileUC, log,
		),
		notificationHandler: notificationHandlers.NewNotificationHandler(
			ucs.listNotificationsUC, ucs.getUnreadCountUC, ucs.markAsReadUC, ucs.markAllAsReadUC, log,
		),
	}
}

// healthChecks checks the database and, when connected, Redis.
func (c *Container) healthChecks() map[string]healthHandlers.Check {
	checks := map[string]healthHandlers.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
