package database

import (
	"log"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Service{},
		&models.Employee{},
		&models.Bay{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index backing the per-slot admission count.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_appointments_active_slot
		ON appointments (appointment_date, appointment_time)
		WHERE status <> 'Cancelled'
	`)

	return db
}
