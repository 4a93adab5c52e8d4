package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"agenda/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) (service.Geocoder, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	geocoder := NewBrasilAPIGeocoder(BrasilAPIOptions{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		RetryWait:  time.Millisecond,
	}, nil, discardLogger())

	return geocoder, &calls
}

func TestBrasilAPIGeocoder_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus service.GeocodeStatus
		wantPoint  orb.Point
	}{
		{
			name:       "string coordinates",
			status:     http.StatusOK,
			body:       `{"cep":"01310100","location":{"type":"Point","coordinates":{"longitude":"-46.6544","latitude":"-23.5632"}}}`,
			wantStatus: service.GeocodeResolved,
			wantPoint:  orb.Point{-46.6544, -23.5632},
		},
		{
			name:       "numeric coordinates",
			status:     http.StatusOK,
			body:       `{"cep":"01310100","location":{"type":"Point","coordinates":{"longitude":-46.6544,"latitude":-23.5632}}}`,
			wantStatus: service.GeocodeResolved,
			wantPoint:  orb.Point{-46.6544, -23.5632},
		},
		{
			name:       "missing coordinates",
			status:     http.StatusOK,
			body:       `{"cep":"01310100","location":{"type":"Point","coordinates":{}}}`,
			wantStatus: service.GeocodeUnresolvable,
		},
		{
			name:       "empty coordinate strings",
			status:     http.StatusOK,
			body:       `{"cep":"01310100","location":{"type":"Point","coordinates":{"longitude":"","latitude":""}}}`,
			wantStatus: service.GeocodeUnresolvable,
		},
		{
			name:       "unknown postal code",
			status:     http.StatusNotFound,
			body:       `{"message":"CEP não encontrado"}`,
			wantStatus: service.GeocodeUnresolvable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder, calls := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/cep/v2/01310100", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			result := geocoder.Resolve(context.Background(), "01310-100")

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantPoint, result.Point)
			assert.Equal(t, int32(1), calls.Load(), "definitive answers are not retried")
		})
	}
}

func TestBrasilAPIGeocoder_RetriesTransientFailures(t *testing.T) {
	var attempt atomic.Int32
	geocoder, calls := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		if attempt.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = io.WriteString(w, `{"location":{"coordinates":{"longitude":"-43.2","latitude":"-22.9"}}}`)
	})

	result := geocoder.Resolve(context.Background(), "20040002")

	assert.Equal(t, service.GeocodeResolved, result.Status)
	assert.Equal(t, orb.Point{-43.2, -22.9}, result.Point)
	assert.Equal(t, int32(3), calls.Load())
}

func TestBrasilAPIGeocoder_ExhaustedRetriesIsProviderFailure(t *testing.T) {
	geocoder, calls := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result := geocoder.Resolve(context.Background(), "20040002")

	assert.Equal(t, service.GeocodeProviderFailure, result.Status)
	require.Error(t, result.Err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestBrasilAPIGeocoder_TimeoutIsProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	geocoder := NewBrasilAPIGeocoder(BrasilAPIOptions{
		BaseURL:    server.URL,
		Timeout:    50 * time.Millisecond,
		MaxRetries: 5,
		RetryWait:  10 * time.Millisecond,
	}, nil, discardLogger())

	result := geocoder.Resolve(context.Background(), "20040002")

	assert.Equal(t, service.GeocodeProviderFailure, result.Status)
}

func TestBrasilAPIGeocoder_UnreachableIsProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	geocoder := NewBrasilAPIGeocoder(BrasilAPIOptions{
		BaseURL:    url,
		Timeout:    time.Second,
		MaxRetries: 1,
		RetryWait:  time.Millisecond,
	}, nil, discardLogger())

	result := geocoder.Resolve(context.Background(), "20040002")

	assert.Equal(t, service.GeocodeProviderFailure, result.Status)
}
