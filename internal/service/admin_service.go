package service

import (
	"context"
	"time"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
)

// CustomerProfile is a registered customer with their vehicles and full
// appointment history.
type CustomerProfile struct {
	User    models.User          `json:"user"`
	History []models.Appointment `json:"history"`
}

type AdminService interface {
	DashboardStats(ctx context.Context) (map[models.AppointmentStatus]int64, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListCustomers(ctx context.Context) ([]CustomerProfile, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListBays(ctx context.Context) ([]models.Bay, error)
}

type adminService struct {
	apptRepo     repository.AppointmentRepository
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	bayRepo      repository.BayRepository
}

func NewAdminService(
	apptRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	bayRepo repository.BayRepository,
) AdminService {
	return &adminService{
		apptRepo:     apptRepo,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		bayRepo:      bayRepo,
	}
}

// DashboardStats returns today's appointment counts per status, with every
// status present even when zero.
func (s *adminService) DashboardStats(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
	today := time.Now().Format("2006-01-02")
	counts, err := s.apptRepo.CountByStatusOn(ctx, today)
	if err != nil {
		return nil, err
	}

	stats := map[models.AppointmentStatus]int64{
		models.StatusPending:    0,
		models.StatusConfirmed:  0,
		models.StatusInProgress: 0,
		models.StatusCompleted:  0,
		models.StatusCancelled:  0,
	}
	for status, count := range counts {
		if _, ok := stats[status]; ok {
			stats[status] = count
		}
	}
	return stats, nil
}

func (s *adminService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.apptRepo.FindAllDetailed(ctx)
}

func (s *adminService) ListCustomers(ctx context.Context) ([]CustomerProfile, error) {
	users, err := s.userRepo.FindCustomers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]CustomerProfile, 0, len(users))
	for _, u := range users {
		history, err := s.apptRepo.FindByUserID(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, CustomerProfile{User: u, History: history})
	}
	return profiles, nil
}

func (s *adminService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

func (s *adminService) ListBays(ctx context.Context) ([]models.Bay, error) {
	return s.bayRepo.FindAll(ctx)
}
