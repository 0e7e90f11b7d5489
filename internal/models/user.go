package models

import "time"

// Account roles
const (
	RoleAdmin        = "Admin"
	RoleDoctor       = "Doctor"
	RoleReceptionist = "Receptionist"
	RolePatient      = "Patient"
)

// ValidRole reports whether role is one of the four account roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RolePatient:
		return true
	}
	return false
}

// User represents the users table - one login identity per row
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null;size:100" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash     string    `gorm:"not null;size:255" json:"-"`
	Role             string    `gorm:"type:enum('Admin','Doctor','Receptionist','Patient');not null" json:"role"`
	SubscriptionPlan string    `gorm:"size:20;default:'Free'" json:"subscription_plan"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
