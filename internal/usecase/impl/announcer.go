package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/domain/service"
	"agenda/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// RegistrationAnnouncer sends the confirmation and publishes the registration
// event for a stored record. Both run off the request path and their failures
// are only logged.
type RegistrationAnnouncer struct {
	notifier  service.Notifier
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	async     func(func())
}

// RegistrationAnnouncerParams holds dependencies for RegistrationAnnouncer, injected by Fx.
type RegistrationAnnouncerParams struct {
	fx.In

	Notifier  service.Notifier
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewRegistrationAnnouncer creates an announcer that dispatches on its own goroutine.
func NewRegistrationAnnouncer(params RegistrationAnnouncerParams) *RegistrationAnnouncer {
	return &RegistrationAnnouncer{
		notifier:  params.Notifier,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		async:     func(fn func()) { go fn() },
	}
}

// Announce returns immediately; the work is bound to a context detached from
// the caller's cancellation and limited by lifecycle.DefaultTimeout.
func (a *RegistrationAnnouncer) Announce(ctx context.Context, event *service.PartyRegisteredEvent) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.RegisteredAt.IsZero() {
		event.RegisteredAt = time.Now().UTC()
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)
	detached := context.WithoutCancel(ctx)

	a.async(func() {
		ctx, cancel := context.WithTimeout(detached, lifecycle.DefaultTimeout)
		defer cancel()

		a.notify(ctx, logger, event)
		a.publish(ctx, logger, event)
	})
}

func (a *RegistrationAnnouncer) notify(ctx context.Context, logger *slog.Logger, event *service.PartyRegisteredEvent) {
	if a.notifier == nil {
		return
	}

	if err := a.notifier.Notify(ctx, event.DisplayName, event.Email); err != nil {
		a.metrics.IncrementNotification(metrics.OutcomeError)
		logger.Warn("Failed to send registration confirmation",
			slog.String("kind", event.Kind),
			slog.String("email", event.Email),
			slog.Any("error", err))

		return
	}

	a.metrics.IncrementNotification(metrics.OutcomeSuccess)
	logger.Info("Registration confirmation sent",
		slog.String("kind", event.Kind),
		slog.String("name", event.DisplayName),
		slog.String("email", event.Email))
}

func (a *RegistrationAnnouncer) publish(ctx context.Context, logger *slog.Logger, event *service.PartyRegisteredEvent) {
	if a.publisher == nil {
		return
	}

	if err := a.publisher.PublishPartyRegistered(ctx, event); err != nil {
		logger.Warn("Failed to publish registration event",
			slog.String("eventId", event.EventID),
			slog.Any("error", err))
	}
}
