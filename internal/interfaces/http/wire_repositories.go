package http

import (
	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/repository"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo         user.Repository
	propertyRepo     property.Repository
	ticketRepo       *repository.TicketRepository
	commentRepo      *repository.CommentRepository
	activityRepo     *repository.ActivityRepository
	attachmentRepo   *repository.AttachmentRepository
	notificationRepo notification.NotificationRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		propertyRepo:     repository.NewPropertyRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
		activityRepo:     repository.NewActivityRepository(db),
		attachmentRepo:   repository.NewAttachmentRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
	}
}
