package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nattapong-dev/garage-booking-service/internal/dto"
	"github.com/nattapong-dev/garage-booking-service/internal/middleware"
	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
)

type UserHandler struct {
	bookings    service.BookingService
	vehicleRepo repository.VehicleRepository
}

func NewUserHandler(bookings service.BookingService, vehicleRepo repository.VehicleRepository) *UserHandler {
	return &UserHandler{bookings: bookings, vehicleRepo: vehicleRepo}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/api/users", auth)
	g.GET("/profile", h.Profile)
	g.POST("/vehicles", h.AddVehicle)
	g.GET("/appointments", h.ListAppointments)
	g.POST("/appointments", h.BookAppointment)
}

func (h *UserHandler) Profile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	vehicles, err := h.vehicleRepo.FindByUserID(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Phone:    user.Phone,
		Vehicles: vehicles,
	})
}

func (h *UserHandler) AddVehicle(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Make == "" || req.Model == "" || req.LicensePlate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "make, model and license plate are required")
	}

	vehicle := &models.Vehicle{
		UserID:       user.ID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
	}
	if err := h.vehicleRepo.Create(c.Request().Context(), vehicle); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// BookAppointment books with a vehicle the user already owns; it runs
// through the same admission path as public bookings.
func (h *UserHandler) BookAppointment(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.UserBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VehicleID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "vehicle_id is required")
	}

	appt, err := h.bookings.CreateAppointment(c.Request().Context(), service.BookingRequest{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		UserID:    &user.ID,
		VehicleID: &req.VehicleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidTime):
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

func (h *UserHandler) ListAppointments(c echo.Context) error {
	user := middleware.CurrentUser(c)

	appts, err := h.bookings.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	resp := make([]dto.AppointmentResponse, len(appts))
	for i := range appts {
		resp[i] = dto.ToAppointmentResponse(&appts[i])
	}
	return c.JSON(http.StatusOK, resp)
}
