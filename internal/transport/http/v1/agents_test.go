package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/aleostudio/a2a-registry/internal/adapter/agentclient"
	"github.com/aleostudio/a2a-registry/internal/config"
	"github.com/aleostudio/a2a-registry/internal/domain"
	"github.com/aleostudio/a2a-registry/internal/registry"
	"github.com/aleostudio/a2a-registry/internal/service"
)

const validCardJSON = `{
	"name": "Test Agent",
	"description": "A test agent",
	"skills": [
		{"name": "translation", "description": "Translates text between languages", "tags": ["translate", "language", "i18n"]}
	]
}`

func newTestHandler(t *testing.T) (*Handler, *registry.Store) {
	t.Helper()
	cfg := &config.Config{
		AppVersion:          "0.1.0",
		HealthCheckInterval: 30 * time.Second,
		MaxFailures:         3,
		ProbeTimeout:        time.Second,
		FetchTimeout:        time.Second,
	}
	store := registry.NewStore(cfg.MaxFailures)
	svc := service.New(store, agentclient.NewClient(cfg.FetchTimeout), cfg)
	return NewHandler(svc), store
}

func cardServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != agentclient.WellKnownPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func postRegister(h *Handler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.RegisterAgent(c)
	return rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h, store := newTestHandler(t)
	store.Put("https://a.example.com", domain.AgentCard{Name: "A"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(1), resp["agents"])
	assert.Equal(t, float64(30), resp["check_interval"])
}

func TestRegisterAgentSuccess(t *testing.T) {
	h, store := newTestHandler(t)
	server := cardServer(t, validCardJSON)

	rec := postRegister(h, `{"url":"`+server.URL+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "registered", resp["status"])
	assert.Equal(t, "Test Agent", resp["agent"])
	assert.Equal(t, 1, store.Count())
}

func TestRegisterAgentMissingURL(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postRegister(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAgentInvalidURL(t *testing.T) {
	h, store := newTestHandler(t)

	rec := postRegister(h, `{"url":"not-a-valid-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.Count())
}

func TestRegisterAgentUnreachable(t *testing.T) {
	h, store := newTestHandler(t)
	server := cardServer(t, validCardJSON)
	server.Close()

	rec := postRegister(h, `{"url":"`+server.URL+`"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 0, store.Count())
}

func TestRegisterAgentInvalidCard(t *testing.T) {
	h, store := newTestHandler(t)
	server := cardServer(t, `{"description":"no name"}`)

	rec := postRegister(h, `{"url":"`+server.URL+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, store.Count())

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["problems"], "name is required")
}

func TestListAgents(t *testing.T) {
	e := echo.New()
	h, store := newTestHandler(t)
	store.Put("https://a.example.com", domain.AgentCard{Name: "A", Skills: []domain.AgentSkill{}})

	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListAgents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "https://a.example.com", resp[0]["url"])
}

func TestDiscoverAgents(t *testing.T) {
	e := echo.New()
	h, store := newTestHandler(t)
	store.Put("https://t.example.com", domain.AgentCard{
		Name:   "T",
		Skills: []domain.AgentSkill{{Name: "x", Tags: []string{"translate"}}},
	})
	store.Put("https://other.example.com", domain.AgentCard{
		Name:   "Other",
		Skills: []domain.AgentSkill{{Name: "y", Tags: []string{"vision"}}},
	})

	req := httptest.NewRequest(http.MethodGet, "/discover?skill=TRANSLATE", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.DiscoverAgents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "https://t.example.com", resp[0]["url"])
}

func TestDiscoverAgentsMissingSkill(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/discover", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.DiscoverAgents(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscoverAgentsNoMatch(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/discover?skill=anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.DiscoverAgents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUnregisterAgent(t *testing.T) {
	e := echo.New()
	h, store := newTestHandler(t)
	store.Put("https://a.example.com", domain.AgentCard{Name: "A"})

	req := httptest.NewRequest(http.MethodDelete, "/unregister?url=https%3A%2F%2Fa.example.com%2F", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.UnregisterAgent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, store.Count())

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unregistered", resp["status"])
	assert.Equal(t, "https://a.example.com", resp["url"])
}

func TestUnregisterAgentNotFound(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/unregister?url=https%3A%2F%2Fmissing.example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.UnregisterAgent(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnregisterAgentMissingParam(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/unregister", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.UnregisterAgent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
