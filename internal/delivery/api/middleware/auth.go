package middleware

import (
	"log/slog"
	"strings"

	"agenda/config"
	"agenda/internal/delivery/api/response"
	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	TokenSvc service.TokenService
}

// AuthMiddleware verifies bearer tokens on the mutation routes.
// With auth disabled every request passes.
type AuthMiddleware struct {
	enabled  bool
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		enabled:  params.Config.Auth != nil && params.Config.Auth.Enabled,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return m.reject(c, "missing bearer token")
		}

		subject, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return m.reject(c, err.Error())
		}

		req := c.Request()
		ctx := deliverycontext.WithSubject(req.Context(), subject)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("subject", subject))
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
		Warn("Rejected request", slog.String("reason", reason))

	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}

// GetSubject returns the authenticated token subject, if any.
func GetSubject(c echo.Context) (string, bool) {
	return deliverycontext.GetSubject(c.Request().Context())
}
