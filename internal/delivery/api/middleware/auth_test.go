package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/config"
	"agenda/internal/errors"
	mockservice "agenda/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, cfg *config.Config, tokenSvc *mockservice.MockTokenService, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/pfisica", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	mw := NewAuthMiddleware(AuthMiddlewareParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		TokenSvc: tokenSvc,
	})
	err := mw.Authenticate(func(c echo.Context) error {
		subject, _ = GetSubject(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, subject
}

func TestAuthMiddleware(t *testing.T) {
	enabled := &config.Config{Auth: &config.AuthConfig{Enabled: true, Secret: "s"}}

	t.Run("disabled passes through", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)

		rec, _ := runAuth(t, &config.Config{}, tokenSvc, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return("operator-1", nil).Once()

		rec, subject := runAuth(t, enabled, tokenSvc, "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "operator-1", subject)
	})

	t.Run("missing header", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)

		rec, _ := runAuth(t, enabled, tokenSvc, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer header", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)

		rec, _ := runAuth(t, enabled, tokenSvc, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return("", errors.New("invalid token")).Once()

		rec, subject := runAuth(t, enabled, tokenSvc, "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, subject)
	})
}
