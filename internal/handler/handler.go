package handler

import (
	"encoding/json"
	"net/http"

	"github.com/surveymail/surveymail/internal/config"
	"github.com/surveymail/surveymail/internal/email"
	"github.com/surveymail/surveymail/internal/logger"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Handler holds all HTTP handlers
type Handler struct {
	log    *logger.Logger
	cfg    *config.Config
	sender email.Sender
}

// New creates a new Handler instance
func New(log *logger.Logger, cfg *config.Config, sender email.Sender) *Handler {
	return &Handler{
		log:    log,
		cfg:    cfg,
		sender: sender,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}
