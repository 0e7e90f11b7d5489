package models

import "time"

// Notification types
const (
	NotificationAppointment  = "appointment"
	NotificationPrescription = "prescription"
	NotificationSystem       = "system"
	NotificationReport       = "report"
)

// Notification represents the notifications table
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null;size:100" json:"title"`
	Desc      string    `gorm:"not null;size:255" json:"desc"`
	Type      string    `gorm:"type:enum('appointment','prescription','system','report');not null" json:"type"`
	Read      bool      `gorm:"default:false" json:"read"`
	Time      string    `gorm:"not null;size:20" json:"time"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Notification model
func (Notification) TableName() string {
	return "notifications"
}
