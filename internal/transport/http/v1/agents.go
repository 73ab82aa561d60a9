package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aleostudio/a2a-registry/internal/domain"
)

// RegisterRequest is the request to register an agent.
type RegisterRequest struct {
	URL string `json:"url"`
}

// RegisterAgent registers a new agent by fetching its card from the
// well-known endpoint.
// POST /register
func (h *Handler) RegisterAgent(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}

	record, err := h.service.RegisterAgent(ctx, req.URL)
	if err != nil {
		return registrationError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "registered",
		"agent":  record.Card.Name,
	})
}

// ListAgents lists all registered agents.
// GET /agents
func (h *Handler) ListAgents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListAgents())
}

// DiscoverAgents returns agents with a skill matching the query keyword.
// GET /discover?skill=keyword
func (h *Handler) DiscoverAgents(c echo.Context) error {
	skill := c.QueryParam("skill")
	if skill == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "skill query parameter is required"})
	}
	return c.JSON(http.StatusOK, h.service.DiscoverAgents(skill))
}

// UnregisterAgent removes an agent from the registry.
// DELETE /unregister?url=agent-url
func (h *Handler) UnregisterAgent(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url query parameter is required"})
	}

	endpoint, err := h.service.UnregisterAgent(rawURL)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "agent not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "unregistered",
		"url":    endpoint,
	})
}

// registrationError maps pipeline failures onto status codes: malformed
// input never reaches the network (400), unreachable agents are an upstream
// problem (502), and fetched-but-invalid cards are the client's (422).
func registrationError(c echo.Context, err error) error {
	var uerr *domain.UpstreamError
	var verr *domain.CardValidationError

	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &uerr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": uerr.Error()})
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":    "invalid agent card",
			"problems": verr.Problems,
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
