package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	_, ok := GetSubject(ctx)
	assert.False(t, ok)
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With("k", "v")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithSubject(ctx, "operator-1")
	ctx = WithLogger(ctx, scoped)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	subject, ok := GetSubject(ctx)
	assert.True(t, ok)
	assert.Equal(t, "operator-1", subject)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestGetRequestID_Fallbacks(t *testing.T) {
	e := echo.New()

	t.Run("echo value", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "from-echo")
		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("response header", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Response().Header().Set(HeaderXRequestID, "from-header")
		assert.Equal(t, "from-header", GetRequestID(c))
	})

	t.Run("none", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})
}
