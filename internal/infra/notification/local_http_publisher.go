package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/service"
	"registrar/internal/errors"
)

const localSubscription = "projects/local/subscriptions/confirmation-code-sub"

// localHTTPPublisher POSTs events to a local endpoint in the Pub/Sub push format,
// so a mail worker can be exercised without Google Cloud.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newLocalHTTPPublisher(endpoint string, logger *slog.Logger) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.ConfirmationCodeEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errors.Wrapf(ErrRejected, "endpoint returned status %d", resp.StatusCode)
	default:
		return errors.Errorf("endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalNotifier] Event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

func eventAttributes(event *service.ConfirmationCodeEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": "confirmation_code",
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
