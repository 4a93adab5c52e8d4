// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"agenda/config"
	"agenda/internal/delivery/api/middleware"
	"agenda/internal/delivery/api/router/handler"
	"agenda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IndividualHandler   *handler.IndividualHandler
	OrganizationHandler *handler.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	individualHandler   *handler.IndividualHandler
	organizationHandler *handler.OrganizationHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		individualHandler:   params.IndividualHandler,
		organizationHandler: params.OrganizationHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", healthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api")

	// Reads are public; writes go through the bearer check.
	individuals := api.Group("/pfisica")
	{
		individuals.GET("", r.individualHandler.List)
		individuals.GET("/filtrar-por-cpf", r.individualHandler.SearchByPrefix)
		individuals.GET("/:id", r.individualHandler.Get)
		individuals.POST("", r.individualHandler.Create, r.authMiddleware.Authenticate)
		individuals.PUT("/:id", r.individualHandler.Update, r.authMiddleware.Authenticate)
		individuals.DELETE("/:id", r.individualHandler.Delete, r.authMiddleware.Authenticate)
	}

	organizations := api.Group("/pjuridica")
	{
		organizations.GET("", r.organizationHandler.List)
		organizations.GET("/filtrar-por-cnpj", r.organizationHandler.SearchByPrefix)
		organizations.GET("/:id", r.organizationHandler.Get)
		organizations.POST("", r.organizationHandler.Create, r.authMiddleware.Authenticate)
		organizations.PUT("/:id", r.organizationHandler.Update, r.authMiddleware.Authenticate)
		organizations.DELETE("/:id", r.organizationHandler.Delete, r.authMiddleware.Authenticate)
	}
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
