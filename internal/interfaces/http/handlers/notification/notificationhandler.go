// Package notification serves the in-app notification inbox of the signed-in user.
package notification

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/notification/dto"
	"github.com/compiler-aditya/PropTech/internal/application/notification/usecases"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

type listExecutor interface {
	Execute(ctx context.Context, recipientID uint) ([]*dto.NotificationDTO, error)
}

type unreadCountExecutor interface {
	Execute(ctx context.Context, recipientID uint) (*dto.UnreadCountDTO, error)
}

type markReadExecutor interface {
	Execute(ctx context.Context, cmd usecases.MarkAsReadCommand) error
}

type markAllReadExecutor interface {
	Execute(ctx context.Context, recipientID uint) (*dto.MarkAllReadDTO, error)
}

type NotificationHandler struct {
	listUC        listExecutor
	unreadCountUC unreadCountExecutor
	markReadUC    markReadExecutor
	markAllReadUC markAllReadExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC listExecutor,
	unreadCountUC unreadCountExecutor,
	markReadUC markReadExecutor,
	markAllReadUC markAllReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		unreadCountUC: unreadCountUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		logger:        logger,
	}
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.unreadCountUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead handles PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notificationID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid notification ID"))
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		RecipientID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.markAllReadUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", result)
}

func currentUserID(c *gin.Context) (uint, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return 0, false
	}
	return actor.ID, true
}
