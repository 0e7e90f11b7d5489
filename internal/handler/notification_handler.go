package handler

import (
	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications lists the authenticated account's notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, _ := identity(c)

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, notifications)
}

// MarkAllRead marks every unread notification as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := identity(c)

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		serviceError(c, err)
		return
	}
	utils.MessageResponse(c, "All notifications marked as read")
}
