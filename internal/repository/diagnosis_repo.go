package repository

import (
	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type DiagnosisRepository struct {
	db *gorm.DB
}

func NewDiagnosisRepo(db *gorm.DB) *DiagnosisRepository {
	return &DiagnosisRepository{db: db}
}

// Create creates a new diagnosis log entry
func (r *DiagnosisRepository) Create(diagnosis *models.DiagnosisLog) error {
	return r.db.Create(diagnosis).Error
}

// ListByPatient returns a patient's diagnosis logs, newest first
func (r *DiagnosisRepository) ListByPatient(patientID uint) ([]models.DiagnosisLog, error) {
	var logs []models.DiagnosisLog
	err := r.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// CountByDoctor counts the diagnoses one doctor has recorded
func (r *DiagnosisRepository) CountByDoctor(doctorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.DiagnosisLog{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}

// CountWithAIResponse counts diagnoses that stored an AI triage response
func (r *DiagnosisRepository) CountWithAIResponse() (int64, error) {
	var count int64
	err := r.db.Model(&models.DiagnosisLog{}).
		Where("ai_response IS NOT NULL AND ai_response != ''").
		Count(&count).Error
	return count, err
}
