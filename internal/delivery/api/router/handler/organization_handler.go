package handler

import (
	"log/slog"
	"net/http"

	"agenda/internal/delivery/api/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger       *slog.Logger
}

// OrganizationHandler serves /api/pjuridica.
type OrganizationHandler struct {
	uc     usecase.OrganizationUsecase
	logger *slog.Logger
}

// NewOrganizationHandler is the constructor for OrganizationHandler
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{
		uc:     params.OrganizationUC,
		logger: params.Logger,
	}
}

// List returns every organization.
func (h *OrganizationHandler) List(c echo.Context) error {
	organizations, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrganizationResponses(organizations))
}

// Get returns one organization by CNPJ, formatted or not.
func (h *OrganizationHandler) Get(c echo.Context) error {
	organization, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrganizationResponse(organization))
}

// SearchByPrefix filters organizations by CNPJ prefix.
func (h *OrganizationHandler) SearchByPrefix(c echo.Context) error {
	var query OrganizationPrefixQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	organizations, err := h.uc.SearchByPrefix(c.Request().Context(), query.Prefix)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrganizationResponses(organizations))
}

// Create registers a new organization.
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid organization input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	organization, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrganizationResponse(organization))
}

// Update merges the body over the stored organization. Every field is optional.
func (h *OrganizationHandler) Update(c echo.Context) error {
	var input usecase.OrganizationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid organization input")
	}

	organization, err := h.uc.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrganizationResponse(organization))
}

// Delete removes an organization.
func (h *OrganizationHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
