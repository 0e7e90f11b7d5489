package service

import (
	"time"

	"ai-clinic-backend/internal/models"
)

type ActivityService struct {
	activity ActivityRepository
}

func NewActivityService(activity ActivityRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

// RecentLogs returns the newest activity entries for the admin feed
func (s *ActivityService) RecentLogs() ([]models.ActivityLog, error) {
	return s.activity.ListRecent(50)
}

// actorName resolves the display name behind an acting account for the
// activity feed
func actorName(users UserRepository, id uint) string {
	if user, err := users.FindByID(id); err == nil {
		return user.Name
	}
	return "Unknown"
}

// logActivity records a best-effort activity row. Feed entries never block
// or fail the action that produced them.
func logActivity(repo ActivityRepository, actor, action, module, entryType string) {
	if repo == nil {
		return
	}
	_ = repo.Create(&models.ActivityLog{
		Actor:  actor,
		Action: action,
		Module: module,
		Type:   entryType,
		Time:   time.Now().Format(time.Kitchen),
	})
}
