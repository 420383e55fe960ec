package repository

import (
	"context"
	"hash/fnv"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
	LockSlot(ctx context.Context, tx *gorm.DB, date, timeOfDay string) error
	Create(ctx context.Context, tx *gorm.DB, appt *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	// FindByIDForUpdate reads the row through tx under a FOR UPDATE lock,
	// so a status check and the following write see the same committed row.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Appointment, error)
	CountActiveAt(ctx context.Context, tx *gorm.DB, date, timeOfDay string) (int64, error)
	CountActiveByTime(ctx context.Context, date string) (map[string]int64, error)
	CountByStatusOn(ctx context.Context, date string) (map[models.AppointmentStatus]int64, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Appointment, error)
	FindAllDetailed(ctx context.Context) ([]models.Appointment, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error
	GetDB() *gorm.DB
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *appointmentRepository) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// LockSlot takes a transaction-scoped advisory lock keyed by (date, time).
// Concurrent admissions for the same slot serialize on it; other slots are
// unaffected. Released automatically at commit/rollback.
func (r *appointmentRepository) LockSlot(ctx context.Context, tx *gorm.DB, date, timeOfDay string) error {
	return tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", slotLockKey(date, timeOfDay)).Error
}

func slotLockKey(date, timeOfDay string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	h.Write([]byte{'|'})
	h.Write([]byte(timeOfDay))
	return int64(h.Sum64())
}

func (r *appointmentRepository) Create(ctx context.Context, tx *gorm.DB, appt *models.Appointment) error {
	return tx.WithContext(ctx).Create(appt).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&appt, id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// CountActiveAt counts non-Cancelled appointments for one slot. Pass the
// admission transaction as tx so the count and insert share its snapshot;
// a nil tx falls back to the base connection.
func (r *appointmentRepository) CountActiveAt(ctx context.Context, tx *gorm.DB, date, timeOfDay string) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ? AND status <> ?",
			date, timeOfDay, models.StatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountActiveByTime(ctx context.Context, date string) (map[string]int64, error) {
	var rows []struct {
		AppointmentTime string
		Count           int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointment_time, COUNT(*) as count").
		Where("appointment_date = ? AND status <> ?", date, models.StatusCancelled).
		Group("appointment_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.AppointmentTime] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepository) CountByStatusOn(ctx context.Context, date string) (map[models.AppointmentStatus]int64, error) {
	var rows []struct {
		Status models.AppointmentStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("appointment_date = ?", date).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) FindAllDetailed(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Service").
		Preload("Bay").
		Preload("Mechanic").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields).Error
}
