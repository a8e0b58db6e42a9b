package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveymail/surveymail/internal/config"
	"github.com/surveymail/surveymail/internal/email"
	"github.com/surveymail/surveymail/internal/handler"
	"github.com/surveymail/surveymail/internal/logger"
	"github.com/surveymail/surveymail/internal/middleware"
	"github.com/surveymail/surveymail/internal/router"
)

func newRouter(sender email.Sender) http.Handler {
	log := logger.New("disabled", "json")
	cfg := &config.Config{
		Brevo: config.BrevoConfig{
			APIKey:    "test-key",
			ToEmail:   "owner@example.com",
			FromEmail: "noreply@example.com",
		},
	}
	h := handler.New(log, cfg, sender)
	return router.New(h, middleware.New(log))
}

func TestRouterSubmitEndToEnd(t *testing.T) {
	r := newRouter(&email.Recorder{})

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"q1":"5"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true}`, strings.TrimSpace(rec.Body.String()))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterSubmitMethodNotAllowed(t *testing.T) {
	sender := &email.Recorder{}
	r := newRouter(sender)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submit", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Method Not Allowed", body["error"])
	assert.Equal(t, 0, sender.Count())
}

func TestRouterHealth(t *testing.T) {
	r := newRouter(&email.Recorder{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
