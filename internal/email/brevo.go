package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// brevoEndpoint is Brevo's transactional send endpoint.
const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// APIError is returned when the provider answers a send request with a
// non-2xx status. Body carries whatever response text could be read.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brevo: unexpected status %d: %s", e.StatusCode, e.Body)
}

// BrevoSender implements Sender using the Brevo transactional email API.
type BrevoSender struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewBrevoSender creates a BrevoSender authenticated with the given API key.
func NewBrevoSender(apiKey string) *BrevoSender {
	return &BrevoSender{
		apiKey:   apiKey,
		endpoint: brevoEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoPayload struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// Send delivers msg through the Brevo API. Provider rejections surface as
// *APIError so callers can relay the response text; transport failures
// surface as plain errors.
func (s *BrevoSender) Send(ctx context.Context, msg Message) error {
	payload := brevoPayload{
		Sender:      brevoAddress{Email: msg.FromEmail, Name: msg.FromName},
		To:          []brevoAddress{{Email: msg.To}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brevo: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			detail = nil
		}
		return &APIError{StatusCode: resp.StatusCode, Body: string(detail)}
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
