package repository

import (
	"errors"

	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type ReceptionistRepository struct {
	db *gorm.DB
}

func NewReceptionistRepo(db *gorm.DB) *ReceptionistRepository {
	return &ReceptionistRepository{db: db}
}

// Create creates a new receptionist profile
func (r *ReceptionistRepository) Create(receptionist *models.Receptionist) error {
	return r.db.Create(receptionist).Error
}

// FindByUserID finds the receptionist profile owned by a user account
func (r *ReceptionistRepository) FindByUserID(userID uint) (*models.Receptionist, error) {
	var receptionist models.Receptionist
	err := r.db.Where("user_id = ?", userID).First(&receptionist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("receptionist not found")
		}
		return nil, err
	}
	return &receptionist, nil
}

// DeleteByUserID removes the profile owned by a user account
func (r *ReceptionistRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Receptionist{}).Error
}
