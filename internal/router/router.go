package router

import (
	"net/http"

	"github.com/surveymail/surveymail/internal/handler"
	"github.com/surveymail/surveymail/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /healthz", h.Health)

	// Submit does its own method check so non-POST callers get the JSON
	// 405 body instead of the mux default.
	mux.HandleFunc("/api/submit", h.Submit)

	var root http.Handler = mux
	root = mw.Logger(root)
	root = mw.RequestID(root)
	root = mw.Recover(root)
	return root
}
