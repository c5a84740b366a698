package notification

import (
	"context"
	"log/slog"

	"registrar/internal/domain/service"
)

// logPublisher writes events to the log instead of sending them. The full code
// is logged so a developer can confirm, which is why it is refused in production.
type logPublisher struct {
	logger *slog.Logger
}

func newLogPublisher(logger *slog.Logger) *logPublisher {
	return &logPublisher{logger: logger}
}

func (p *logPublisher) Publish(_ context.Context, event *service.ConfirmationCodeEvent) error {
	p.logger.Info("[LogNotifier] Confirmation code issued",
		slog.String("event_id", event.EventID),
		slog.String("email", event.Email),
		slog.String("code", event.Code),
	)

	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
