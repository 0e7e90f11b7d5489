package repository

import (
	"errors"
	"time"

	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create creates a new appointment. The unique index on (doctor_id, date)
// makes the insert fail with gorm.ErrDuplicatedKey on a slot collision.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// FindByID finds an appointment by primary key
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByDoctorAndDate finds an appointment occupying an exact slot
func (r *AppointmentRepository) FindByDoctorAndDate(doctorID uint, date time.Time) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where("doctor_id = ? AND date = ?", doctorID, date).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("appointment not found")
		}
		return nil, err
	}
	return &appointment, nil
}

// Update saves changes to an existing appointment
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// ListByDoctor returns a doctor's appointments with patients populated,
// earliest first
func (r *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Preload("Patient").
		Order("date ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListByPatient returns a patient's appointments with doctors populated,
// newest first
func (r *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Preload("Doctor").
		Order("date DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListBetween returns the appointments inside a time window, earliest
// first, with both parties populated
func (r *AppointmentRepository) ListBetween(start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("date >= ? AND date < ?", start, end).
		Preload("Patient").
		Preload("Doctor").
		Order("date ASC").
		Find(&appointments).Error
	return appointments, err
}

// CountSince counts appointments scheduled at or after t
func (r *AppointmentRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("date >= ?", t).Count(&count).Error
	return count, err
}

// CountByStatusSince counts appointments with one status at or after t
func (r *AppointmentRepository) CountByStatusSince(status string, t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("status = ? AND date >= ?", status, t).
		Count(&count).Error
	return count, err
}

// CountByDoctorSince counts one doctor's appointments at or after t
func (r *AppointmentRepository) CountByDoctorSince(doctorID uint, t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date >= ?", doctorID, t).
		Count(&count).Error
	return count, err
}
