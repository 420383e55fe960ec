package main

import (
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/nattapong-dev/garage-booking-service/config"
	"github.com/nattapong-dev/garage-booking-service/internal/handler"
	"github.com/nattapong-dev/garage-booking-service/internal/middleware"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
	"github.com/nattapong-dev/garage-booking-service/internal/service"
	"github.com/nattapong-dev/garage-booking-service/pkg/database"
	"github.com/nattapong-dev/garage-booking-service/pkg/logger"
	"github.com/nattapong-dev/garage-booking-service/pkg/rabbitmq"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := database.NewPostgresDB(cfg.DSN())

	// Lifecycle events are best-effort; the service runs without a broker.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		log.Warn("RABBIT_URL not set, appointment events disabled")
	}

	// Repositories
	apptRepo := repository.NewAppointmentRepository(db)
	bayRepo := repository.NewBayRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// Services
	availabilitySvc := service.NewAvailabilityService(apptRepo, bayRepo)
	bookingSvc := service.NewBookingService(apptRepo, bayRepo, serviceRepo, vehicleRepo, employeeRepo, publisher)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(serviceRepo)
	adminSvc := service.NewAdminService(apptRepo, userRepo, employeeRepo, bayRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "garage-booking-service"})
	})

	auth := middleware.Auth(userRepo, cfg.JWTSecret)
	handler.NewBookingHandler(availabilitySvc, bookingSvc).RegisterRoutes(e)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewServiceHandler(catalogSvc).RegisterRoutes(e, auth)
	handler.NewUserHandler(bookingSvc, vehicleRepo).RegisterRoutes(e, auth)
	handler.NewAdminHandler(adminSvc, bookingSvc).RegisterRoutes(e, auth)

	log.Info("garage booking service starting", zap.String("port", cfg.ServerPort))
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
