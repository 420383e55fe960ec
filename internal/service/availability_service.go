package service

import (
	"context"
	"errors"
	"time"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
)

var (
	ErrMissingDate = errors.New("date is required")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

type AvailabilityService interface {
	Slots(ctx context.Context, date string) ([]models.Slot, error)
}

type availabilityService struct {
	apptRepo repository.AppointmentRepository
	bayRepo  repository.BayRepository
}

func NewAvailabilityService(apptRepo repository.AppointmentRepository, bayRepo repository.BayRepository) AvailabilityService {
	return &availabilityService{apptRepo: apptRepo, bayRepo: bayRepo}
}

// Slots computes the availability view for every operational time on the
// given date. Capacity and booked counts are derived fresh on every call;
// nothing is cached, so bay status changes take effect immediately.
func (s *availabilityService) Slots(ctx context.Context, date string) ([]models.Slot, error) {
	if date == "" {
		return nil, ErrMissingDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	capacity, err := s.bayRepo.CountActive(ctx, nil)
	if err != nil {
		return nil, err
	}

	counts, err := s.apptRepo.CountActiveByTime(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, len(models.OperationalSlots))
	for _, t := range models.OperationalSlots {
		booked := counts[t]
		slots = append(slots, models.Slot{
			Time:      t[:5],
			Available: booked < capacity,
			Booked:    int(booked),
			Capacity:  int(capacity),
		})
	}
	return slots, nil
}
