package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"agenda/config"
	"agenda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPublisher(url string) *localHTTPPublisher {
	p := NewLocalHTTPPublisher(url, "party-registered", discardLogger()).(*localHTTPPublisher)
	p.retryWait = time.Millisecond

	return p
}

func TestLocalHTTPPublisher_PublishPartyRegistered(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.PartyRegisteredEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Kind:        "individual",
		TaxID:       "52998224725",
		DisplayName: "Maria Silva",
		Email:       "maria@example.com",
	}

	require.NoError(t, newTestPublisher(server.URL).PublishPartyRegistered(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "projects/local/subscriptions/party-registered-push", received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "52998224725", received.Message.Attributes["tax_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.PartyRegisteredEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Maria Silva", decoded.DisplayName)
}

func TestLocalHTTPPublisher_Statuses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "server error is retried", status: http.StatusBadGateway, wantCalls: localMaxRetries + 1},
		{name: "rejection is not retried", status: http.StatusBadRequest, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := newTestPublisher(server.URL).PublishPartyRegistered(context.Background(), &service.PartyRegisteredEvent{EventID: "evt-2"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), strconv.Itoa(tt.status))
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestLocalHTTPPublisher_RecoversAfterRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestPublisher(server.URL).PublishPartyRegistered(context.Background(), &service.PartyRegisteredEvent{EventID: "evt-3"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestEncodeEvent_RequiresID(t *testing.T) {
	_, _, err := encodeEvent(&service.PartyRegisteredEvent{})
	require.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("noop when unconfigured", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: discardLogger(),
		})
		require.NoError(t, err)
		require.NoError(t, publisher.PublishPartyRegistered(context.Background(), &service.PartyRegisteredEvent{}))
		require.NoError(t, publisher.Close())
	})

	for name, cfg := range map[string]*config.PubSubConfig{
		"unknown provider":     {Provider: "kafka", TopicID: "t"},
		"missing topic":        {Provider: "local", LocalEndpoint: "http://localhost"},
		"local without target": {Provider: "local", TopicID: "t"},
		"google without proj":  {Provider: "google", TopicID: "t"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: cfg},
				Logger: discardLogger(),
			})
			require.Error(t, err)
		})
	}

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", TopicID: "t", LocalEndpoint: "http://localhost"}},
			Logger: discardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})
}
