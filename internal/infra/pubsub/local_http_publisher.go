package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

const (
	localPublishTimeout = 10 * time.Second
	localMaxRetries     = 2
	localRetryWait      = 200 * time.Millisecond
)

// PushEnvelope is the body Pub/Sub push subscriptions deliver; the local
// publisher posts the same shape so subscribers run unchanged in development.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage carries the base64 event and its attributes.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher pushes registration events straight to a subscriber endpoint.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	maxRetries   uint64
	retryWait    time.Duration
	logger       *slog.Logger
}

// NewLocalHTTPPublisher posts push envelopes for topicID to endpoint.
func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		client:       &http.Client{Timeout: localPublishTimeout},
		maxRetries:   localMaxRetries,
		retryWait:    localRetryWait,
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishPartyRegistered(ctx context.Context, event *service.PartyRegisteredEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: p.subscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   event.EventID,
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.retryWait
	err = backoff.RetryNotify(
		func() error { return p.push(ctx, event.RequestID, body) },
		backoff.WithContext(backoff.WithMaxRetries(policy, p.maxRetries), ctx),
		func(err error, wait time.Duration) {
			logger.Debug("Retrying event push",
				slog.String("event_id", event.EventID),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
		},
	)
	if err != nil {
		return err
	}

	logger.Debug("Event pushed",
		slog.String("event_id", event.EventID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

// push delivers one envelope; 4xx answers are not retried.
func (p *localHTTPPublisher) push(ctx context.Context, requestID string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push event")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return errors.Errorf("subscriber returned status %d", resp.StatusCode)
	default:
		return backoff.Permanent(errors.Errorf("subscriber rejected event with status %d", resp.StatusCode))
	}
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
