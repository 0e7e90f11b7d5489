package models

import "time"

// Medicine is one entry of a prescription. Entries keep the order they
// were submitted in.
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration,omitempty"`
}

// Prescription represents the prescriptions table
type Prescription struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PatientID    uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID     uint       `gorm:"not null;index" json:"doctor_id"`
	Medicines    []Medicine `gorm:"serializer:json;type:json" json:"medicines"`
	Instructions string     `gorm:"type:text" json:"instructions"`
	CreatedAt    time.Time  `json:"created_at"`
	Patient      Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor       Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}
