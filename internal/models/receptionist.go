package models

import "time"

// Receptionist represents the receptionists table - the role profile owned
// by a Receptionist user
type Receptionist struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name       string    `gorm:"not null;size:100" json:"name"`
	Contact    string    `gorm:"not null;size:50" json:"contact"`
	EmployeeID string    `gorm:"uniqueIndex;not null;size:50" json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	User       User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Receptionist model
func (Receptionist) TableName() string {
	return "receptionists"
}
