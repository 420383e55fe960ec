package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
	"github.com/nattapong-dev/garage-booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrMissingFields       = errors.New("service, date and time are required")
	ErrInvalidTime         = errors.New("time is not a bookable slot")
	ErrMissingContact      = errors.New("guest name, email and phone are required")
	ErrMissingVehicle      = errors.New("vehicle make, model and license plate are required")
	ErrSlotUnavailable     = errors.New("selected slot is no longer available")
	ErrServiceNotFound     = errors.New("service not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNothingToUpdate     = errors.New("no fields to update")
	ErrInvalidStatus       = errors.New("unknown appointment status")
	ErrTerminalStatus      = errors.New("appointment is in a terminal status")
	ErrBayNotFound         = errors.New("bay not found")
	ErrMechanicNotFound    = errors.New("mechanic not found")
)

// BookingRequest is the flat admission input as it arrives over the wire.
// Identity and vehicle halves are resolved into exactly one variant each
// before anything is written.
type BookingRequest struct {
	ServiceID uint
	Date      string // YYYY-MM-DD
	Time      string // HH:MM or HH:MM:SS

	UserID     *uint
	GuestName  string
	GuestEmail string
	GuestPhone string

	VehicleID           *uint
	VehicleMake         string
	VehicleModel        string
	VehicleYear         int
	VehicleLicensePlate string
	VehicleVIN          string
}

// GuestContact identifies an unregistered customer.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}

// Identity is the resolved customer: a registered user when UserID is
// non-zero, otherwise the guest contact.
type Identity struct {
	UserID uint
	Guest  *GuestContact
}

// VehicleDetails are inline vehicle fields for guests and new vehicles.
type VehicleDetails struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
}

// VehicleInput is the resolved vehicle: an existing reference when
// VehicleID is non-zero, otherwise inline details.
type VehicleInput struct {
	VehicleID uint
	Inline    *VehicleDetails
}

// AppointmentUpdate is a partial admin update; nil fields are left alone.
type AppointmentUpdate struct {
	Status        *models.AppointmentStatus
	MechanicNotes *string
	BayID         *uint
	MechanicID    *uint
}

type BookingService interface {
	CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, upd AppointmentUpdate) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error)
}

type bookingService struct {
	apptRepo     repository.AppointmentRepository
	bayRepo      repository.BayRepository
	serviceRepo  repository.ServiceRepository
	vehicleRepo  repository.VehicleRepository
	employeeRepo repository.EmployeeRepository
	publisher    *rabbitmq.Publisher
}

func NewBookingService(
	apptRepo repository.AppointmentRepository,
	bayRepo repository.BayRepository,
	serviceRepo repository.ServiceRepository,
	vehicleRepo repository.VehicleRepository,
	employeeRepo repository.EmployeeRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		apptRepo:     apptRepo,
		bayRepo:      bayRepo,
		serviceRepo:  serviceRepo,
		vehicleRepo:  vehicleRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
	}
}

// CreateAppointment admits a booking request against the current slot
// capacity. The capacity check and the insert run in one transaction under
// a per-slot advisory lock, so concurrent admissions for the same
// (date, time) serialize and can never overrun capacity together.
func (s *bookingService) CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if req.ServiceID == 0 || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	slotTime := normalizeSlotTime(req.Time)
	if !models.ValidSlotTime(slotTime) {
		return nil, ErrInvalidTime
	}

	identity, err := resolveIdentity(req)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.resolveVehicle(ctx, req, identity)
	if err != nil {
		return nil, err
	}

	if _, err := s.serviceRepo.FindByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	appt := buildAppointment(req.ServiceID, req.Date, slotTime, identity, vehicle)

	err = s.apptRepo.InTx(ctx, func(tx *gorm.DB) error {
		// Serialize concurrent admissions for this slot only.
		if err := s.apptRepo.LockSlot(ctx, tx, req.Date, slotTime); err != nil {
			return err
		}

		booked, err := s.apptRepo.CountActiveAt(ctx, tx, req.Date, slotTime)
		if err != nil {
			return err
		}
		capacity, err := s.bayRepo.CountActive(ctx, tx)
		if err != nil {
			return err
		}
		if booked >= capacity {
			return ErrSlotUnavailable
		}

		return s.apptRepo.Create(ctx, tx, appt)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("appointment.created", appt)
	}
	return appt, nil
}

// buildAppointment maps the resolved variants onto a Pending ledger row.
// Client-supplied status is never honored.
func buildAppointment(serviceID uint, date, slotTime string, identity Identity, vehicle VehicleInput) *models.Appointment {
	appt := &models.Appointment{
		Reference:       uuid.NewString(),
		ServiceID:       serviceID,
		AppointmentDate: date,
		AppointmentTime: slotTime,
		Status:          models.StatusPending,
	}

	if identity.UserID != 0 {
		uid := identity.UserID
		appt.UserID = &uid
	} else {
		appt.GuestName = identity.Guest.Name
		appt.GuestEmail = identity.Guest.Email
		appt.GuestPhone = identity.Guest.Phone
	}

	if vehicle.VehicleID != 0 {
		vid := vehicle.VehicleID
		appt.VehicleID = &vid
	} else {
		appt.VehicleMake = vehicle.Inline.Make
		appt.VehicleModel = vehicle.Inline.Model
		appt.VehicleYear = vehicle.Inline.Year
		appt.VehicleLicensePlate = vehicle.Inline.LicensePlate
		appt.VehicleVIN = vehicle.Inline.VIN
	}
	return appt
}

// resolveIdentity picks exactly one identity arm. A user reference wins
// over guest fields when both are supplied.
func resolveIdentity(req BookingRequest) (Identity, error) {
	if req.UserID != nil && *req.UserID != 0 {
		return Identity{UserID: *req.UserID}, nil
	}
	if req.GuestName == "" || req.GuestEmail == "" || req.GuestPhone == "" {
		return Identity{}, ErrMissingContact
	}
	return Identity{Guest: &GuestContact{
		Name:  req.GuestName,
		Email: req.GuestEmail,
		Phone: req.GuestPhone,
	}}, nil
}

// resolveVehicle picks exactly one vehicle arm. A vehicle reference wins
// over inline fields; it must belong to the registered requester.
func (s *bookingService) resolveVehicle(ctx context.Context, req BookingRequest, identity Identity) (VehicleInput, error) {
	if req.VehicleID != nil && *req.VehicleID != 0 {
		if identity.UserID == 0 {
			// Guests own no vehicles, so a reference can never be theirs.
			return VehicleInput{}, ErrVehicleNotFound
		}
		if _, err := s.vehicleRepo.FindOwned(ctx, *req.VehicleID, identity.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return VehicleInput{}, ErrVehicleNotFound
			}
			return VehicleInput{}, err
		}
		return VehicleInput{VehicleID: *req.VehicleID}, nil
	}

	if req.VehicleMake == "" || req.VehicleModel == "" || req.VehicleLicensePlate == "" {
		return VehicleInput{}, ErrMissingVehicle
	}
	return VehicleInput{Inline: &VehicleDetails{
		Make:         req.VehicleMake,
		Model:        req.VehicleModel,
		Year:         req.VehicleYear,
		LicensePlate: req.VehicleLicensePlate,
		VIN:          req.VehicleVIN,
	}}, nil
}

// UpdateAppointment applies a partial admin update. Completed and
// Cancelled appointments are immutable.
func (s *bookingService) UpdateAppointment(ctx context.Context, id uint, upd AppointmentUpdate) (*models.Appointment, error) {
	fields := map[string]any{}
	if upd.Status != nil {
		if !models.ValidStatus(*upd.Status) {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *upd.Status
	}
	if upd.MechanicNotes != nil {
		fields["mechanic_notes"] = *upd.MechanicNotes
	}
	if upd.BayID != nil {
		if _, err := s.bayRepo.FindByID(ctx, *upd.BayID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBayNotFound
			}
			return nil, err
		}
		fields["bay_id"] = *upd.BayID
	}
	if upd.MechanicID != nil {
		if _, err := s.employeeRepo.FindByID(ctx, *upd.MechanicID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMechanicNotFound
			}
			return nil, err
		}
		fields["mechanic_id"] = *upd.MechanicID
	}
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	var updated *models.Appointment
	err := s.apptRepo.InTx(ctx, func(tx *gorm.DB) error {
		// Locked read: a concurrent cancel commits before this check runs,
		// so a terminal row can never be overwritten.
		appt, err := s.apptRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appt.Status.Terminal() {
			return ErrTerminalStatus
		}

		if err := s.apptRepo.UpdateFields(ctx, tx, id, fields); err != nil {
			return err
		}

		if upd.Status != nil {
			appt.Status = *upd.Status
		}
		if upd.MechanicNotes != nil {
			appt.MechanicNotes = *upd.MechanicNotes
		}
		if upd.BayID != nil {
			appt.BayID = upd.BayID
		}
		if upd.MechanicID != nil {
			appt.MechanicID = upd.MechanicID
		}
		updated = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("appointment.updated", updated)
	}
	return updated, nil
}

func (s *bookingService) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	appt, err := s.apptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return s.apptRepo.FindByUserID(ctx, userID)
}

func normalizeSlotTime(t string) string {
	if len(t) == 5 { // HH:MM
		return t + ":00"
	}
	return t
}
