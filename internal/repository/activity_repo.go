package repository

import (
	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity log entry
func (r *ActivityRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// ListRecent returns the newest activity log entries
func (r *ActivityRepository) ListRecent(limit int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
