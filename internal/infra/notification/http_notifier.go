// Package notification delivers registration confirmations.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"agenda/internal/domain/service"
	"agenda/internal/errors"
)

// confirmationMessage is the body posted to the confirmation endpoint.
type confirmationMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

const confirmationSubject = "Cadastro realizado com sucesso"

// httpNotifier posts a confirmation message to a mail relay endpoint.
type httpNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPNotifier creates a notifier that calls endpoint with the given timeout.
func NewHTTPNotifier(endpoint string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	return &httpNotifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (n *httpNotifier) Notify(ctx context.Context, displayName, email string) error {
	body, err := json.Marshal(confirmationMessage{
		Name:    displayName,
		Email:   email,
		Subject: confirmationSubject,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send confirmation")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("confirmation endpoint returned status %d", resp.StatusCode)
	}

	n.logger.Info("Confirmation sent",
		slog.String("name", displayName),
		slog.String("email", email),
	)

	return nil
}
