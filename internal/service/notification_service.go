package service

import "ai-clinic-backend/internal/models"

type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// ListForUser returns the account's notifications, newest first
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return s.notifications.ListByUser(userID)
}

// MarkAllRead flips every unread notification of the account
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.notifications.MarkAllRead(userID)
}
