package models

import "time"

// Patient represents the patients table - the role profile owned by a
// Patient user. Exactly one row exists per Patient account.
type Patient struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name             string    `gorm:"not null;size:100" json:"name"`
	Age              int       `gorm:"not null" json:"age"`
	Gender           string    `gorm:"type:enum('Male','Female','Other');default:'Other'" json:"gender"`
	Contact          string    `gorm:"not null;size:50" json:"contact"`
	Address          string    `gorm:"size:255" json:"address"`
	InsuranceStatus  string    `gorm:"type:enum('Active','None','Pending');default:'None'" json:"insurance_status"`
	BloodGroup       string    `gorm:"size:10" json:"blood_group"`
	EmergencyContact string    `gorm:"size:50" json:"emergency_contact"`
	CreatedBy        *uint     `json:"created_by,omitempty"` // staff account, nil when self-registered
	CreatedAt        time.Time `json:"created_at"`
	User             User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
