package http

import (
	attachmentUsecases "github.com/compiler-aditya/PropTech/internal/application/attachment/usecases"
	notificationUsecases "github.com/compiler-aditya/PropTech/internal/application/notification/usecases"
	propertyUsecases "github.com/compiler-aditya/PropTech/internal/application/property/usecases"
	ticketUsecases "github.com/compiler-aditya/PropTech/internal/application/ticket/usecases"
	userUsecases "github.com/compiler-aditya/PropTech/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	loginUC           *userUsecases.LoginUseCase
	registerUC        *userUsecases.RegisterUseCase
	getCurrentUserUC  *userUsecases.GetCurrentUserUseCase
	listTechniciansUC *userUsecases.ListTechniciansUseCase
	updateAvatarUC    *userUsecases.UpdateAvatarUseCase
	removeAvatarUC    *userUsecases.RemoveAvatarUseCase
	getAvatarUC       *userUsecases.GetAvatarUseCase

	// Property
	createPropertyUC      *propertyUsecases.CreatePropertyUseCase
	listPropertiesUC      *propertyUsecases.ListPropertiesUseCase
	listPropertyOptionsUC *propertyUsecases.ListPropertyOptionsUseCase
	getPropertyUC         *propertyUsecases.GetPropertyUseCase

	// Ticket
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	assignTicketUC   *ticketUsecases.AssignTicketUseCase
	changeStatusUC   *ticketUsecases.ChangeStatusUseCase
	changePriorityUC *ticketUsecases.ChangePriorityUseCase
	addCommentUC     *ticketUsecases.AddCommentUseCase
	dashboardStatsUC *ticketUsecases.DashboardStatsUseCase

	// Attachment
	uploadAttachmentsUC *attachmentUsecases.UploadAttachmentsUseCase
	removeAttachmentUC  *attachmentUsecases.RemoveAttachmentUseCase
	getFileUC           *attachmentUsecases.GetFileUseCase

	// Notification
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	getUnreadCountUC    *notificationUsecases.GetUnreadCountUseCase
	markAsReadUC        *notificationUsecases.MarkAsReadUseCase
	markAllAsReadUC     *notificationUsecases.MarkAllAsReadUseCase
}

// initUseCases builds every use case from the repositories and services
// created by initInfrastructure and initNotifications.
func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos

	c.ucs = &allUseCases{
		loginUC:           userUsecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		registerUC:        userUsecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		getCurrentUserUC:  userUsecases.NewGetCurrentUserUseCase(repos.userRepo, log),
		listTechniciansUC: userUsecases.NewListTechniciansUseCase(repos.userRepo, repos.ticketRepo, c.refCache, log),
		updateAvatarUC:    userUsecases.NewUpdateAvatarUseCase(repos.userRepo, c.blobs, log),
		removeAvatarUC:    userUsecases.NewRemoveAvatarUseCase(repos.userRepo, c.blobs, log),
		getAvatarUC:       userUsecases.NewGetAvatarUseCase(repos.userRepo, c.blobs, log),

		createPropertyUC:      propertyUsecases.NewCreatePropertyUseCase(repos.propertyRepo, c.refCache, log),
		listPropertiesUC:      propertyUsecases.NewListPropertiesUseCase(repos.propertyRepo, log),
		listPropertyOptionsUC: propertyUsecases.NewListPropertyOptionsUseCase(repos.propertyRepo, c.refCache, log),

		getPropertyUC: propertyUsecases.NewGetPropertyUseCase(
			repos.propertyRepo, repos.userRepo, repos.ticketRepo, repos.commentRepo, repos.attachmentRepo, log,
		),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(
			repos.ticketRepo, repos.activityRepo, repos.propertyRepo, repos.userRepo,
			c.txManager, c.dispatcher, log,
		),
		listTicketsUC: ticketUsecases.NewListTicketsUseCase(
			repos.ticketRepo, repos.commentRepo, repos.attachmentRepo,
			repos.propertyRepo, repos.userRepo, log,
		),
		getTicketUC: ticketUsecases.NewGetTicketUseCase(
			repos.ticketRepo, repos.commentRepo, repos.activityRepo, repos.attachmentRepo,
			repos.propertyRepo, repos.userRepo, log,
		),
		assignTicketUC: ticketUsecases.NewAssignTicketUseCase(
			repos.ticketRepo, repos.activityRepo, repos.userRepo,
			c.txManager, c.dispatcher, log,
		),
		changeStatusUC: ticketUsecases.NewChangeStatusUseCase(
			repos.ticketRepo, repos.activityRepo, c.txManager, c.dispatcher, log,
		),
		changePriorityUC: ticketUsecases.NewChangePriorityUseCase(
			repos.ticketRepo, repos.activityRepo, c.txManager, log,
		),
		addCommentUC: ticketUsecases.NewAddCommentUseCase(
			repos.ticketRepo, repos.commentRepo, repos.activityRepo, repos.userRepo,
			c.txManager, c.dispatcher, log,
		),
		dashboardStatsUC: ticketUsecases.NewDashboardStatsUseCase(
			repos.ticketRepo, repos.propertyRepo, repos.userRepo, log,
		),

		uploadAttachmentsUC: attachmentUsecases.NewUploadAttachmentsUseCase(
			repos.ticketRepo, repos.attachmentRepo, repos.activityRepo,
			c.blobs, c.txManager, log,
		),
		removeAttachmentUC: attachmentUsecases.NewRemoveAttachmentUseCase(
			repos.ticketRepo, repos.attachmentRepo, c.blobs, log,
		),
		getFileUC: attachmentUsecases.NewGetFileUseCase(
			repos.ticketRepo, repos.attachmentRepo, c.blobs, log,
		),

		listNotificationsUC: notificationUsecases.NewListNotificationsUseCase(repos.notificationRepo, log),
		getUnreadCountUC:    notificationUsecases.NewGetUnreadCountUseCase(repos.notificationRepo, log),
		markAsReadUC:        notificationUsecases.NewMarkAsReadUseCase(repos.notificationRepo, log),
		markAllAsReadUC:     notificationUsecases.NewMarkAllAsReadUseCase(repos.notificationRepo, log),
	}
}
