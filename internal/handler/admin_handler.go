package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nattapong-dev/garage-booking-service/internal/dto"
	"github.com/nattapong-dev/garage-booking-service/internal/middleware"
	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
)

type AdminHandler struct {
	admin    service.AdminService
	bookings service.BookingService
}

func NewAdminHandler(admin service.AdminService, bookings service.BookingService) *AdminHandler {
	return &AdminHandler{admin: admin, bookings: bookings}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/api/admin", auth, middleware.RequireStaff)
	g.GET("/dashboard-stats", h.DashboardStats)
	g.GET("/appointments", h.ListAppointments)
	g.PATCH("/appointments/:id", h.UpdateAppointment)
	g.GET("/customers", h.ListCustomers)
	g.GET("/employees", h.ListEmployees)
	g.GET("/bays", h.ListBays)
}

func (h *AdminHandler) DashboardStats(c echo.Context) error {
	stats, err := h.admin.DashboardStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListAppointments(c echo.Context) error {
	appts, err := h.admin.ListAppointments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	resp := make([]dto.AdminAppointmentResponse, len(appts))
	for i := range appts {
		resp[i] = dto.ToAdminAppointmentResponse(&appts[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateAppointment applies a partial update: status, notes, bay and
// mechanic assignment.
func (h *AdminHandler) UpdateAppointment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	var req dto.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	upd := service.AppointmentUpdate{
		MechanicNotes: req.MechanicNotes,
		BayID:         req.BayID,
		MechanicID:    req.MechanicID,
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		upd.Status = &status
	}

	appt, err := h.bookings.UpdateAppointment(c.Request().Context(), uint(id), upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate), errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAppointmentNotFound),
			errors.Is(err, service.ErrBayNotFound),
			errors.Is(err, service.ErrMechanicNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTerminalStatus):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, appt)
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.admin.ListCustomers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *AdminHandler) ListEmployees(c echo.Context) error {
	employees, err := h.admin.ListEmployees(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *AdminHandler) ListBays(c echo.Context) error {
	bays, err := h.admin.ListBays(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, bays)
}
