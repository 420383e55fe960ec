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

type ServiceHandler struct {
	catalog service.CatalogService
}

func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// RegisterRoutes exposes the catalog: reads are public, writes are staff
// only.
func (h *ServiceHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/api/services")
	g.GET("", h.List)
	g.GET("/:id", h.Get)

	staff := g.Group("", auth, middleware.RequireStaff)
	staff.POST("", h.Create)
	staff.PUT("/:id", h.Update)
	staff.DELETE("/:id", h.Delete)
}

func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}

	svc, err := h.catalog.GetService(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c echo.Context) error {
	var req dto.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	svc := &models.Service{
		Name:                     req.Name,
		Description:              req.Description,
		Price:                    req.Price,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		ImageURL:                 req.ImageURL,
	}
	if err := h.catalog.CreateService(c.Request().Context(), svc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}

	var req dto.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	svc := &models.Service{
		ID:                       uint(id),
		Name:                     req.Name,
		Description:              req.Description,
		Price:                    req.Price,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		ImageURL:                 req.ImageURL,
	}
	if err := h.catalog.UpdateService(c.Request().Context(), svc); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}

	if err := h.catalog.DeleteService(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service removed"})
}
