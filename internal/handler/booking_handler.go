package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nattapong-dev/garage-booking-service/internal/dto"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
)

type BookingHandler struct {
	availability service.AvailabilityService
	bookings     service.BookingService
}

func NewBookingHandler(availability service.AvailabilityService, bookings service.BookingService) *BookingHandler {
	return &BookingHandler{availability: availability, bookings: bookings}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/bookings")
	g.GET("/slots", h.GetSlots)
	g.POST("", h.CreateBooking)
}

// GetSlots returns the availability view for every operational time on the
// requested date.
func (h *BookingHandler) GetSlots(c echo.Context) error {
	slots, err := h.availability.Slots(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingDate), errors.Is(err, service.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}
	return c.JSON(http.StatusOK, slots)
}

// CreateBooking admits a guest or registered booking into the ledger.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appt, err := h.bookings.CreateAppointment(c.Request().Context(), service.BookingRequest{
		ServiceID:           req.ServiceID,
		Date:                req.Date,
		Time:                req.Time,
		UserID:              req.UserID,
		GuestName:           req.GuestName,
		GuestEmail:          req.GuestEmail,
		GuestPhone:          req.GuestPhone,
		VehicleID:           req.VehicleID,
		VehicleMake:         req.VehicleMake,
		VehicleModel:        req.VehicleModel,
		VehicleYear:         req.VehicleYear,
		VehicleLicensePlate: req.VehicleLicensePlate,
		VehicleVIN:          req.VehicleVIN,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidTime),
			errors.Is(err, service.ErrMissingContact),
			errors.Is(err, service.ErrMissingVehicle):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSlotUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrServiceNotFound),
			errors.Is(err, service.ErrVehicleNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusCreated, dto.BookingCreatedResponse{
		Message:       "Appointment booked successfully",
		AppointmentID: appt.ID,
		Reference:     appt.Reference,
	})
}
