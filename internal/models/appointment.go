package models

import "time"

type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "Pending"
	StatusConfirmed  AppointmentStatus = "Confirmed"
	StatusInProgress AppointmentStatus = "In-Progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCancelled  AppointmentStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses never revert.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"type:varchar(36);uniqueIndex" json:"reference"`

	// Registered customer or guest contact, never both.
	UserID     *uint  `json:"user_id,omitempty"`
	GuestName  string `gorm:"type:varchar(100)" json:"guest_name,omitempty"`
	GuestEmail string `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"type:varchar(30)" json:"guest_phone,omitempty"`

	// Existing vehicle reference or inline details, never both.
	VehicleID           *uint  `json:"vehicle_id,omitempty"`
	VehicleMake         string `gorm:"type:varchar(50)" json:"vehicle_make,omitempty"`
	VehicleModel        string `gorm:"type:varchar(50)" json:"vehicle_model,omitempty"`
	VehicleYear         int    `json:"vehicle_year,omitempty"`
	VehicleLicensePlate string `gorm:"type:varchar(20)" json:"vehicle_license_plate,omitempty"`
	VehicleVIN          string `gorm:"type:varchar(17)" json:"vehicle_vin,omitempty"`

	ServiceID uint `gorm:"not null" json:"service_id"`

	AppointmentDate string `gorm:"type:varchar(10);not null;index:idx_appointments_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"type:varchar(8);not null;index:idx_appointments_slot" json:"appointment_time"`

	Status AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	BayID         *uint  `json:"bay_id,omitempty"`
	MechanicID    *uint  `json:"mechanic_id,omitempty"`
	MechanicNotes string `gorm:"type:text" json:"mechanic_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Bay      *Bay      `gorm:"foreignKey:BayID" json:"bay,omitempty"`
	Mechanic *Employee `gorm:"foreignKey:MechanicID" json:"mechanic,omitempty"`
}
