package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/surveymail/surveymail/internal/email"
	"github.com/surveymail/surveymail/internal/form"
	"github.com/surveymail/surveymail/internal/render"
)

// Submit accepts a survey submission and relays it by email. The body may
// be JSON, URL-encoded or multipart; a body that cannot be parsed at all
// still produces an email with the envelope rows and an empty field table.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	f := form.Parse(r)
	subject := render.Subject(f)
	body := render.HTML(f, time.Now().UTC())

	if err := h.cfg.Brevo.Validate(); err != nil {
		h.log.Error().Msg("delivery configuration incomplete")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	msg := email.Message{
		FromEmail: h.cfg.Brevo.FromEmail,
		FromName:  h.cfg.Brevo.SenderName(),
		To:        h.cfg.Brevo.ToEmail,
		Subject:   subject,
		HTMLBody:  body,
	}
	if err := h.sender.Send(r.Context(), msg); err != nil {
		var apiErr *email.APIError
		if errors.As(err, &apiErr) {
			h.log.Error().
				Int("provider_status", apiErr.StatusCode).
				Str("details", apiErr.Body).
				Msg("provider rejected email")
			writeJSON(w, http.StatusBadGateway, map[string]interface{}{
				"error":   "Brevo API error",
				"details": apiErr.Body,
			})
			return
		}
		h.log.Error().Err(err).Msg("email delivery failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Info().Str("subject", subject).Int("fields", f.Len()).Msg("survey relayed")
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
