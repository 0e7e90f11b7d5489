package models

import "time"

// Invoice represents the invoices table
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	InvoiceID string    `gorm:"uniqueIndex;not null;size:50" json:"invoice_id"`
	Patient   string    `gorm:"not null;size:100" json:"patient"`
	Type      string    `gorm:"not null;size:50" json:"type"`
	Amount    string    `gorm:"not null;size:20" json:"amount"`
	Status    string    `gorm:"type:enum('Paid','Pending');default:'Pending'" json:"status"`
	Date      string    `gorm:"not null;size:20" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
