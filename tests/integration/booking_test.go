//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBays(t *testing.T, active int, maintenance int) {
	t.Helper()
	for i := 0; i < active; i++ {
		require.NoError(t, testDB.Create(&models.Bay{
			Name:   fmt.Sprintf("Bay %d", i+1),
			Status: models.BayAvailable,
		}).Error)
	}
	for i := 0; i < maintenance; i++ {
		require.NoError(t, testDB.Create(&models.Bay{
			Name:   fmt.Sprintf("Bay M%d", i+1),
			Status: models.BayMaintenance,
		}).Error)
	}
}

func seedService(t *testing.T) *models.Service {
	t.Helper()
	svc := &models.Service{Name: "Oil Change", Price: 49.99, EstimatedDurationMinutes: 60}
	require.NoError(t, testDB.Create(svc).Error)
	return svc
}

func newBookingService() service.BookingService {
	return service.NewBookingService(
		repository.NewAppointmentRepository(testDB),
		repository.NewBayRepository(testDB),
		repository.NewServiceRepository(testDB),
		repository.NewVehicleRepository(testDB),
		repository.NewEmployeeRepository(testDB),
		nil,
	)
}

func newAvailabilityService() service.AvailabilityService {
	return service.NewAvailabilityService(
		repository.NewAppointmentRepository(testDB),
		repository.NewBayRepository(testDB),
	)
}

func guestRequest(serviceID uint, date, timeOfDay string, n int) service.BookingRequest {
	return service.BookingRequest{
		ServiceID:           serviceID,
		Date:                date,
		Time:                timeOfDay,
		GuestName:           fmt.Sprintf("Guest %03d", n),
		GuestEmail:          fmt.Sprintf("guest%03d@example.com", n),
		GuestPhone:          "555-0000",
		VehicleMake:         "Toyota",
		VehicleModel:        "Camry",
		VehicleYear:         2020,
		VehicleLicensePlate: fmt.Sprintf("TST-%03d", n),
	}
}

// Empty day with two active bays: every slot open.
func TestSlots_EmptyDay(t *testing.T) {
	cleanTables()
	seedBays(t, 2, 1)

	slots, err := newAvailabilityService().Slots(context.Background(), "2025-06-01")

	require.NoError(t, err)
	require.Len(t, slots, len(models.OperationalSlots))
	assert.Equal(t, "09:00", slots[0].Time)
	assert.True(t, slots[0].Available)
	assert.Equal(t, 0, slots[0].Booked)
	assert.Equal(t, 2, slots[0].Capacity, "maintenance bay excluded from capacity")
}

// Full slot refuses the next admission; a different slot still admits.
func TestAdmission_SlotFull(t *testing.T) {
	cleanTables()
	seedBays(t, 1, 0)
	svc := seedService(t)
	bookings := newBookingService()

	_, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", 1))
	require.NoError(t, err)

	_, err = bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", 2))
	assert.ErrorIs(t, err, service.ErrSlotUnavailable)

	_, err = bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "10:00", 3))
	assert.NoError(t, err, "a different slot on the same date is unaffected")

	slots, err := newAvailabilityService().Slots(context.Background(), "2025-06-01")
	require.NoError(t, err)
	assert.False(t, slots[0].Available)
	assert.Equal(t, 1, slots[0].Booked)
}

// Cancelled appointments free their slot.
func TestAdmission_CancelledRowsExcluded(t *testing.T) {
	cleanTables()
	seedBays(t, 1, 0)
	svc := seedService(t)
	bookings := newBookingService()

	first, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", 1))
	require.NoError(t, err)

	status := models.StatusCancelled
	_, err = bookings.UpdateAppointment(context.Background(), first.ID, service.AppointmentUpdate{Status: &status})
	require.NoError(t, err)

	second, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", 2))
	require.NoError(t, err, "cancelled row no longer occupies the slot")
	assert.Equal(t, models.StatusPending, second.Status)
}

// Concurrent admissions for one slot with capacity 1: exactly one wins and
// the ledger never overruns capacity.
func TestConcurrentAdmissions_SingleBay(t *testing.T) {
	cleanTables()
	seedBays(t, 1, 0)
	svc := seedService(t)
	bookings := newBookingService()

	attempts := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	refusedCount := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", n))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successCount++
			} else if assert.ErrorIs(t, err, service.ErrSlotUnavailable) {
				refusedCount++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successCount, "exactly one concurrent admission may win")
	assert.Equal(t, attempts-1, refusedCount)

	var count int64
	testDB.Model(&models.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ? AND status <> ?",
			"2025-06-01", "09:00:00", models.StatusCancelled).
		Count(&count)
	assert.Equal(t, int64(1), count, "ledger never exceeds capacity")
}

// Same race with capacity 2: two winners, never three.
func TestConcurrentAdmissions_TwoBays(t *testing.T) {
	cleanTables()
	seedBays(t, 2, 0)
	svc := seedService(t)
	bookings := newBookingService()

	attempts := 12
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			if _, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-02", "11:00", n)); err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, successCount)

	var count int64
	testDB.Model(&models.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ? AND status <> ?",
			"2025-06-02", "11:00:00", models.StatusCancelled).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

// Zero capacity: nothing admits, availability reports all slots closed.
func TestAdmission_ZeroCapacity(t *testing.T) {
	cleanTables()
	seedBays(t, 0, 2)
	svc := seedService(t)
	bookings := newBookingService()

	_, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-01", "09:00", 1))
	assert.ErrorIs(t, err, service.ErrSlotUnavailable)

	slots, err := newAvailabilityService().Slots(context.Background(), "2025-06-01")
	require.NoError(t, err)
	for _, slot := range slots {
		assert.False(t, slot.Available)
		assert.Equal(t, 0, slot.Capacity)
	}
}

// Terminal appointments reject further updates.
func TestUpdate_TerminalStatusSticks(t *testing.T) {
	cleanTables()
	seedBays(t, 1, 0)
	svc := seedService(t)
	bookings := newBookingService()

	appt, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-03", "09:00", 1))
	require.NoError(t, err)

	completed := models.StatusCompleted
	for _, step := range []models.AppointmentStatus{models.StatusConfirmed, models.StatusInProgress, completed} {
		s := step
		_, err = bookings.UpdateAppointment(context.Background(), appt.ID, service.AppointmentUpdate{Status: &s})
		require.NoError(t, err)
	}

	pending := models.StatusPending
	_, err = bookings.UpdateAppointment(context.Background(), appt.ID, service.AppointmentUpdate{Status: &pending})
	assert.ErrorIs(t, err, service.ErrTerminalStatus)
}

// A cancel racing a concurrent confirm: whichever order they commit in,
// the appointment must end Cancelled and never resurrect.
func TestUpdate_ConcurrentCancelAndConfirm(t *testing.T) {
	cleanTables()
	seedBays(t, 1, 0)
	svc := seedService(t)
	bookings := newBookingService()

	cancelled := models.StatusCancelled
	confirmed := models.StatusConfirmed

	for i := 0; i < 5; i++ {
		appt, err := bookings.CreateAppointment(context.Background(), guestRequest(svc.ID, "2025-06-04", "09:00", i))
		require.NoError(t, err)

		var wg sync.WaitGroup
		var confirmErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := bookings.UpdateAppointment(context.Background(), appt.ID, service.AppointmentUpdate{Status: &cancelled})
			assert.NoError(t, err, "cancelling a non-terminal appointment always succeeds")
		}()
		go func() {
			defer wg.Done()
			_, confirmErr = bookings.UpdateAppointment(context.Background(), appt.ID, service.AppointmentUpdate{Status: &confirmed})
		}()
		wg.Wait()

		var final models.Appointment
		require.NoError(t, testDB.First(&final, appt.ID).Error)
		assert.Equal(t, models.StatusCancelled, final.Status, "a cancelled appointment never resurrects")
		if confirmErr != nil {
			assert.ErrorIs(t, confirmErr, service.ErrTerminalStatus)
		}
	}
}
