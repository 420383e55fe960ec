package models

import "time"

type BayStatus string

const (
	BayAvailable   BayStatus = "Available"
	BayOccupied    BayStatus = "Occupied"
	BayMaintenance BayStatus = "Maintenance"
)

// Bay is a physical work bay. Bays in Maintenance do not count toward
// slot capacity.
type Bay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Status    BayStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
