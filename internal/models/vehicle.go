package models

import "time"

type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Make         string    `gorm:"type:varchar(50);not null" json:"make"`
	Model        string    `gorm:"type:varchar(50);not null" json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `gorm:"type:varchar(20);not null" json:"license_plate"`
	VIN          string    `gorm:"type:varchar(17)" json:"vin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
