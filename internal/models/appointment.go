package models

import "time"

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// ValidAppointmentStatus reports whether s is a known appointment status
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment represents the appointments table - one scheduled visit
// between a patient and a doctor. The composite unique index rejects a
// second booking for the same doctor at the same timestamp.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"doctor_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"date"`
	Status    string    `gorm:"type:enum('pending','confirmed','completed','cancelled');default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Patient   Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
