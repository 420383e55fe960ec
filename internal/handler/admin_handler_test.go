package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
	"github.com/stretchr/testify/assert"
)

// --- Mock AdminService ---

type mockAdminService struct {
	statsFn        func(ctx context.Context) (map[models.AppointmentStatus]int64, error)
	appointmentsFn func(ctx context.Context) ([]models.Appointment, error)
	customersFn    func(ctx context.Context) ([]service.CustomerProfile, error)
	employeesFn    func(ctx context.Context) ([]models.Employee, error)
	baysFn         func(ctx context.Context) ([]models.Bay, error)
}

func (m *mockAdminService) DashboardStats(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
	return m.statsFn(ctx)
}

func (m *mockAdminService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return m.appointmentsFn(ctx)
}

func (m *mockAdminService) ListCustomers(ctx context.Context) ([]service.CustomerProfile, error) {
	return m.customersFn(ctx)
}

func (m *mockAdminService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.employeesFn(ctx)
}

func (m *mockAdminService) ListBays(ctx context.Context) ([]models.Bay, error) {
	return m.baysFn(ctx)
}

// --- Tests ---

func patchContext(t *testing.T, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/appointments/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestUpdateAppointment_Handler_Success(t *testing.T) {
	bookings := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, upd service.AppointmentUpdate) (*models.Appointment, error) {
			assert.Equal(t, uint(5), id)
			assert.NotNil(t, upd.Status)
			assert.Equal(t, models.StatusConfirmed, *upd.Status)
			assert.NotNil(t, upd.BayID)
			assert.Nil(t, upd.MechanicNotes)
			return &models.Appointment{ID: id, Status: *upd.Status, BayID: upd.BayID}, nil
		},
	}

	c, rec := patchContext(t, `{"status":"Confirmed","bay_id":2}`, "5")
	h := NewAdminHandler(nil, bookings)
	err := h.UpdateAppointment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.Appointment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusConfirmed, resp.Status)
}

func TestUpdateAppointment_Handler_NothingToUpdate(t *testing.T) {
	bookings := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, upd service.AppointmentUpdate) (*models.Appointment, error) {
			return nil, service.ErrNothingToUpdate
		},
	}

	c, _ := patchContext(t, `{}`, "5")
	h := NewAdminHandler(nil, bookings)
	err := h.UpdateAppointment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateAppointment_Handler_NotFound(t *testing.T) {
	bookings := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, upd service.AppointmentUpdate) (*models.Appointment, error) {
			return nil, service.ErrAppointmentNotFound
		},
	}

	c, _ := patchContext(t, `{"status":"Confirmed"}`, "999")
	h := NewAdminHandler(nil, bookings)
	err := h.UpdateAppointment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateAppointment_Handler_UnknownBay(t *testing.T) {
	bookings := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, upd service.AppointmentUpdate) (*models.Appointment, error) {
			return nil, service.ErrBayNotFound
		},
	}

	c, _ := patchContext(t, `{"bay_id":42}`, "5")
	h := NewAdminHandler(nil, bookings)
	err := h.UpdateAppointment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateAppointment_Handler_TerminalStatus(t *testing.T) {
	bookings := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, upd service.AppointmentUpdate) (*models.Appointment, error) {
			return nil, service.ErrTerminalStatus
		},
	}

	c, _ := patchContext(t, `{"status":"Pending"}`, "5")
	h := NewAdminHandler(nil, bookings)
	err := h.UpdateAppointment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateAppointment_Handler_InvalidID(t *testing.T) {
	c, _ := patchContext(t, `{"status":"Confirmed"}`, "abc")
	h := NewAdminHandler(nil, nil)
	err := h.UpdateAppointment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDashboardStats_Handler(t *testing.T) {
	admin := &mockAdminService{
		statsFn: func(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
			return map[models.AppointmentStatus]int64{
				models.StatusPending:    3,
				models.StatusConfirmed:  1,
				models.StatusInProgress: 0,
				models.StatusCompleted:  2,
				models.StatusCancelled:  0,
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard-stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(admin, nil)
	err := h.DashboardStats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]int64
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats["Pending"])
	assert.Equal(t, int64(0), stats["Cancelled"])
}

func TestListAppointments_Handler_GuestFallback(t *testing.T) {
	admin := &mockAdminService{
		appointmentsFn: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:              1,
					AppointmentDate: "2025-06-01",
					AppointmentTime: "09:00:00",
					Status:          models.StatusPending,
					GuestName:       "Guest Tom",
					GuestEmail:      "tom@guest.com",
					VehicleMake:     "Ford",
					VehicleModel:    "Focus",
				},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(admin, nil)
	err := h.ListAppointments(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Guest Tom", resp[0]["customer_name"], "guest fields fill in for missing user")
	assert.Equal(t, "Ford", resp[0]["vehicle_make"])
}
