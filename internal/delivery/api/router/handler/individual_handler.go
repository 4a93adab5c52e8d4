// Package handler contains the HTTP handlers for the registry.
package handler

import (
	"log/slog"
	"net/http"

	"agenda/internal/delivery/api/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IndividualHandlerParams holds dependencies for IndividualHandler, injected by Fx.
type IndividualHandlerParams struct {
	fx.In

	IndividualUC usecase.IndividualUsecase
	Logger       *slog.Logger
}

// IndividualHandler serves /api/pfisica.
type IndividualHandler struct {
	uc     usecase.IndividualUsecase
	logger *slog.Logger
}

// NewIndividualHandler is the constructor for IndividualHandler
func NewIndividualHandler(params IndividualHandlerParams) *IndividualHandler {
	return &IndividualHandler{
		uc:     params.IndividualUC,
		logger: params.Logger,
	}
}

// List returns every individual.
func (h *IndividualHandler) List(c echo.Context) error {
	individuals, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIndividualResponses(individuals))
}

// Get returns one individual by CPF, formatted or not.
func (h *IndividualHandler) Get(c echo.Context) error {
	individual, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIndividualResponse(individual))
}

// SearchByPrefix filters individuals by CPF prefix.
func (h *IndividualHandler) SearchByPrefix(c echo.Context) error {
	var query IndividualPrefixQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	individuals, err := h.uc.SearchByPrefix(c.Request().Context(), query.Prefix)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIndividualResponses(individuals))
}

// Create registers a new individual.
func (h *IndividualHandler) Create(c echo.Context) error {
	var req CreateIndividualRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid individual input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	individual, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newIndividualResponse(individual))
}

// Update merges the body over the stored individual. Every field is optional.
func (h *IndividualHandler) Update(c echo.Context) error {
	var input usecase.IndividualInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid individual input")
	}

	individual, err := h.uc.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIndividualResponse(individual))
}

// Delete removes an individual.
func (h *IndividualHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
