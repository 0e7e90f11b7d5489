package repository

import (
	"errors"

	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepo(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

// Create creates a new prescription
func (r *PrescriptionRepository) Create(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

// ListByPatient returns a patient's prescriptions with doctors populated,
// newest first
func (r *PrescriptionRepository) ListByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Where("patient_id = ?", patientID).
		Preload("Doctor").
		Order("created_at DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}

// FindByIDForPatient returns a prescription only when it belongs to the
// given patient
func (r *PrescriptionRepository) FindByIDForPatient(id, patientID uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Where("id = ? AND patient_id = ?", id, patientID).
		Preload("Doctor").
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("prescription not found")
		}
		return nil, err
	}
	return &prescription, nil
}

// Count returns the total number of prescriptions
func (r *PrescriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Prescription{}).Count(&count).Error
	return count, err
}
