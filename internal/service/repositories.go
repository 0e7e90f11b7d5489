package service

import (
	"time"

	"ai-clinic-backend/internal/models"
)

// Persistence interfaces consumed by the services. The gorm-backed
// implementations live in internal/repository; tests substitute in-memory
// fakes.

type UserRepository interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
	ListByRoles(roles ...string) ([]models.User, error)
	CountByRole(role string) (int64, error)
}

type PatientRepository interface {
	Create(patient *models.Patient) error
	FindByID(id uint) (*models.Patient, error)
	FindByUserID(userID uint) (*models.Patient, error)
	Update(patient *models.Patient) error
	DeleteByUserID(userID uint) error
	List() ([]models.Patient, error)
	Count() (int64, error)
}

type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	FindByID(id uint) (*models.Doctor, error)
	FindByUserID(userID uint) (*models.Doctor, error)
	Update(doctor *models.Doctor) error
	DeleteByUserID(userID uint) error
}

type ReceptionistRepository interface {
	Create(receptionist *models.Receptionist) error
	FindByUserID(userID uint) (*models.Receptionist, error)
	DeleteByUserID(userID uint) error
}

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	FindByDoctorAndDate(doctorID uint, date time.Time) (*models.Appointment, error)
	Update(appointment *models.Appointment) error
	ListByDoctor(doctorID uint) ([]models.Appointment, error)
	ListByPatient(patientID uint) ([]models.Appointment, error)
	ListBetween(start, end time.Time) ([]models.Appointment, error)
	CountSince(t time.Time) (int64, error)
	CountByStatusSince(status string, t time.Time) (int64, error)
	CountByDoctorSince(doctorID uint, t time.Time) (int64, error)
}

type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	ListByPatient(patientID uint) ([]models.Prescription, error)
	FindByIDForPatient(id, patientID uint) (*models.Prescription, error)
	Count() (int64, error)
}

type DiagnosisRepository interface {
	Create(diagnosis *models.DiagnosisLog) error
	ListByPatient(patientID uint) ([]models.DiagnosisLog, error)
	CountByDoctor(doctorID uint) (int64, error)
	CountWithAIResponse() (int64, error)
}

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	FindByID(id uint) (*models.Invoice, error)
	Update(invoice *models.Invoice) error
	List() ([]models.Invoice, error)
}

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkAllRead(userID uint) error
}

type ActivityRepository interface {
	Create(entry *models.ActivityLog) error
	ListRecent(limit int) ([]models.ActivityLog, error)
}
