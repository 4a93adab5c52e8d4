package notification

import (
	"context"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"go.uber.org/fx"
)

// logNotifier only records that a confirmation would have been sent.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(ctx context.Context, displayName, email string) error {
	n.logger.InfoContext(ctx, "Confirmation sent",
		slog.String("name", displayName),
		slog.String("email", email),
	)

	return nil
}

// Params holds dependencies for the notifier, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params Params) (service.Notifier, error) {
	cfg := params.Config.Notification
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotificationProviderLog {
		params.Logger.Info("Using log notifier")

		return &logNotifier{logger: params.Logger}, nil
	}

	if cfg.Provider != constants.NotificationProviderHTTP {
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required for http notification provider")
	}

	params.Logger.Info("Using HTTP notifier", slog.String("endpoint", cfg.Endpoint))

	return NewHTTPNotifier(cfg.Endpoint, cfg.Timeout, params.Logger), nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
