// Package pubsub publishes party registration events.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct{}

func (noopPublisher) PublishPartyRegistered(context.Context, *service.PartyRegisteredEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider; empty disables events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Registration events disabled")

		return noopPublisher{}, nil
	}
	if cfg.TopicID == "" {
		return nil, errors.New("pubsub.topicId is required")
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, params.Logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("pubsub.projectId is required for the google provider")
		}
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Logger.Info("Registration events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic", cfg.TopicID),
	)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return publisher.Close()
			},
		})
	}

	return publisher, nil
}

// encodeEvent renders the JSON payload and the attributes subscribers filter on.
func encodeEvent(event *service.PartyRegisteredEvent) ([]byte, map[string]string, error) {
	if event == nil || event.EventID == "" {
		return nil, nil, errors.New("event id is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode registration event")
	}

	attributes := map[string]string{
		"event_id": event.EventID,
		"kind":     event.Kind,
		"tax_id":   event.TaxID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// Module provides the EventPublisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
