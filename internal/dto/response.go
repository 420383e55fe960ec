package dto

import (
	"time"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type BookingCreatedResponse struct {
	Message       string `json:"message"`
	AppointmentID uint   `json:"appointmentId"`
	Reference     string `json:"reference"`
}

type AuthResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
	Token string          `json:"token"`
}

type ProfileResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Role     models.UserRole  `json:"role"`
	Phone    string           `json:"phone,omitempty"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

type AppointmentResponse struct {
	ID              uint                     `json:"id"`
	Reference       string                   `json:"reference"`
	AppointmentDate string                   `json:"appointment_date"`
	AppointmentTime string                   `json:"appointment_time"`
	Status          models.AppointmentStatus `json:"status"`
	ServiceName     string                   `json:"service_name,omitempty"`
	VehicleMake     string                   `json:"vehicle_make,omitempty"`
	VehicleModel    string                   `json:"vehicle_model,omitempty"`
	LicensePlate    string                   `json:"license_plate,omitempty"`
	MechanicNotes   string                   `json:"mechanic_notes,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}

// AdminAppointmentResponse flattens an appointment with its joined rows;
// customer and vehicle fields fall back to the guest/inline values when
// there is no registered reference.
type AdminAppointmentResponse struct {
	ID              uint                     `json:"id"`
	Reference       string                   `json:"reference"`
	AppointmentDate string                   `json:"appointment_date"`
	AppointmentTime string                   `json:"appointment_time"`
	Status          models.AppointmentStatus `json:"status"`
	MechanicNotes   string                   `json:"mechanic_notes,omitempty"`

	BayID        *uint  `json:"bay_id,omitempty"`
	BayName      string `json:"bay_name,omitempty"`
	MechanicID   *uint  `json:"mechanic_id,omitempty"`
	MechanicName string `json:"mechanic_name,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	VehicleMake         string `json:"vehicle_make,omitempty"`
	VehicleModel        string `json:"vehicle_model,omitempty"`
	VehicleYear         int    `json:"vehicle_year,omitempty"`
	VehicleLicensePlate string `json:"vehicle_license_plate,omitempty"`
}

func ToAppointmentResponse(a *models.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.ID,
		Reference:       a.Reference,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
		MechanicNotes:   a.MechanicNotes,
		CreatedAt:       a.CreatedAt,
	}
	if a.Service != nil {
		resp.ServiceName = a.Service.Name
	}
	if a.Vehicle != nil {
		resp.VehicleMake = a.Vehicle.Make
		resp.VehicleModel = a.Vehicle.Model
		resp.LicensePlate = a.Vehicle.LicensePlate
	} else {
		resp.VehicleMake = a.VehicleMake
		resp.VehicleModel = a.VehicleModel
		resp.LicensePlate = a.VehicleLicensePlate
	}
	return resp
}

func ToAdminAppointmentResponse(a *models.Appointment) AdminAppointmentResponse {
	resp := AdminAppointmentResponse{
		ID:              a.ID,
		Reference:       a.Reference,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
		MechanicNotes:   a.MechanicNotes,
		BayID:           a.BayID,
		MechanicID:      a.MechanicID,
	}

	if a.Service != nil {
		resp.ServiceName = a.Service.Name
	}
	if a.Bay != nil {
		resp.BayName = a.Bay.Name
	}
	if a.Mechanic != nil {
		resp.MechanicName = a.Mechanic.Name
	}

	if a.User != nil {
		resp.CustomerName = a.User.Name
		resp.CustomerEmail = a.User.Email
		resp.CustomerPhone = a.User.Phone
	} else {
		resp.CustomerName = a.GuestName
		resp.CustomerEmail = a.GuestEmail
		resp.CustomerPhone = a.GuestPhone
	}

	if a.Vehicle != nil {
		resp.VehicleMake = a.Vehicle.Make
		resp.VehicleModel = a.Vehicle.Model
		resp.VehicleYear = a.Vehicle.Year
		resp.VehicleLicensePlate = a.Vehicle.LicensePlate
	} else {
		resp.VehicleMake = a.VehicleMake
		resp.VehicleModel = a.VehicleModel
		resp.VehicleYear = a.VehicleYear
		resp.VehicleLicensePlate = a.VehicleLicensePlate
	}
	return resp
}
