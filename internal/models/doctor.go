package models

import "time"

// Doctor represents the doctors table - the role profile owned by a
// Doctor user
type Doctor struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name            string    `gorm:"not null;size:100" json:"name"`
	Specialization  string    `gorm:"not null;size:100" json:"specialization"`
	Experience      int       `gorm:"not null" json:"experience"`
	ConsultationFee float64   `gorm:"not null" json:"consultation_fee"`
	Contact         string    `gorm:"not null;size:50" json:"contact"`
	About           string    `gorm:"type:text" json:"about"`
	Gender          string    `gorm:"type:enum('Male','Female','Other');default:'Other'" json:"gender"`
	Age             int       `json:"age"`
	CreatedAt       time.Time `json:"created_at"`
	User            User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
