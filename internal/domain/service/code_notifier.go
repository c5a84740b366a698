package service

import "context"

// ConfirmationCodeEvent is the payload published for a confirmation code.
type ConfirmationCodeEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Email     string `json:"email"`
	Code      string `json:"code"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// CodeNotifier delivers one-time confirmation codes to an email address.
type CodeNotifier interface {
	// SendCode delivers code to email. A returned error means the user did not get the code.
	SendCode(ctx context.Context, email, code string) error

	// Close releases any resources held by the notifier
	Close() error
}
