package email

import "context"

// Sender is the interface all mail delivery backends implement. The
// abstraction keeps the HTTP handler testable without network calls.
type Sender interface {
	// Send delivers a single email message.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	FromEmail string // sender address
	FromName  string // sender display name
	To        string // recipient email address
	Subject   string // email subject
	HTMLBody  string // HTML email body
}
