package models

import "time"

// Risk levels for a diagnosis
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// ValidRiskLevel reports whether s is a known risk level
func ValidRiskLevel(s string) bool {
	switch s {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// DiagnosisLog represents the diagnosis_logs table
type DiagnosisLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID   uint      `gorm:"not null;index" json:"doctor_id"`
	Symptoms   string    `gorm:"type:text;not null" json:"symptoms"`
	AIResponse string    `gorm:"type:text" json:"ai_response,omitempty"`
	RiskLevel  string    `gorm:"type:enum('Low','Medium','High','Critical');default:'Low'" json:"risk_level"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for DiagnosisLog model
func (DiagnosisLog) TableName() string {
	return "diagnosis_logs"
}
