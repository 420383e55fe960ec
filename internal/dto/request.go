package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBookingRequest is the public booking payload. Either user_id or
// the guest_* fields identify the customer; either vehicle_id or the
// vehicle_* fields describe the vehicle. Status is never accepted from
// the client.
type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`

	UserID     *uint  `json:"user_id,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`

	VehicleID           *uint  `json:"vehicle_id,omitempty"`
	VehicleMake         string `json:"vehicle_make,omitempty"`
	VehicleModel        string `json:"vehicle_model,omitempty"`
	VehicleYear         int    `json:"vehicle_year,omitempty"`
	VehicleLicensePlate string `json:"vehicle_license_plate,omitempty"`
	VehicleVIN          string `json:"vin,omitempty"`
}

// UserBookingRequest books with a vehicle the authenticated user owns.
type UserBookingRequest struct {
	VehicleID uint   `json:"vehicle_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

type AddVehicleRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin,omitempty"`
}

type ServiceRequest struct {
	Name                     string  `json:"name"`
	Description              string  `json:"description"`
	Price                    float64 `json:"price"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	ImageURL                 string  `json:"image_url"`
}

// UpdateAppointmentRequest is a partial admin update; omitted fields are
// left untouched.
type UpdateAppointmentRequest struct {
	Status        *string `json:"status,omitempty"`
	MechanicNotes *string `json:"mechanic_notes,omitempty"`
	BayID         *uint   `json:"bay_id,omitempty"`
	MechanicID    *uint   `json:"mechanic_id,omitempty"`
}
