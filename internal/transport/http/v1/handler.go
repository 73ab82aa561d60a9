// Package v1 provides HTTP handlers for the registry.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aleostudio/a2a-registry/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the registry routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Health)
	e.POST("/register", h.RegisterAgent)
	e.GET("/agents", h.ListAgents)
	e.GET("/discover", h.DiscoverAgents)
	e.DELETE("/unregister", h.UnregisterAgent)
}

// Health returns registry status.
// GET /
func (h *Handler) Health(c echo.Context) error {
	status := h.service.Status()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"version":        status.Version,
		"agents":         status.Agents,
		"check_interval": int(status.CheckInterval.Seconds()),
	})
}
