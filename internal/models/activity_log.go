package models

import "time"

// ActivityLog represents the activity_logs table
// Used for the admin-facing system activity feed
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:100;not null" json:"actor"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Module    string    `gorm:"size:50;not null" json:"module"`
	Type      string    `gorm:"type:enum('CREATE','UPDATE','DELETE','ALERT','INFO');not null" json:"type"`
	Time      string    `gorm:"size:20;not null" json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
