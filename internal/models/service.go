package models

import "time"

// Service is a catalog entry (oil change, brake check, ...). Referenced by
// appointments, managed by admins.
type Service struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	Name                     string    `gorm:"type:varchar(100);not null" json:"name"`
	Description              string    `gorm:"type:text" json:"description,omitempty"`
	Price                    float64   `gorm:"not null" json:"price"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes"`
	ImageURL                 string    `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
