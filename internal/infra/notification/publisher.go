package notification

import (
	"context"

	"registrar/internal/domain/service"
	"registrar/internal/errors"
)

// ErrRejected marks a delivery the receiving side refused. It is not retried.
var ErrRejected = errors.New("confirmation code delivery rejected")

// eventPublisher hands a confirmation code event to a transport.
type eventPublisher interface {
	Publish(ctx context.Context, event *service.ConfirmationCodeEvent) error
	Close() error
}
