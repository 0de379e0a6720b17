// Package http provides the HTTP handler layer for the offer pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/travel-offers/offer-pricing-service/internal/adapter/http/response"
	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/usecase"
)

// OfferHandler handles HTTP requests for offer-related endpoints.
type OfferHandler struct {
	useCase usecase.OfferUseCase
}

// NewOfferHandler creates a new OfferHandler with the given use case.
func NewOfferHandler(uc usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{
		useCase: uc,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search for priced offers
// @Description Search for flight offers with display pricing applied
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// GetOffer handles GET /api/v1/offers/:id
//
// @Summary Get a single offer
// @Description Resolve an offer by id with pricing for the requested ticket count
// @Tags offers
// @Produce json
// @Param id path string true "Offer id"
// @Param tickets query int false "Number of tickets (default 1)"
// @Success 200 {object} usecase.OfferDetail
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/offers/{id} [get]
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID := c.Param("id")
	if offerID == "" {
		return response.ValidationErrorWithMessage(c, "offer id is required")
	}

	tickets := 1
	if raw := c.QueryParam("tickets"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9 {
			return response.ValidationErrorWithMessage(c, "tickets must be an integer between 1 and 9")
		}
		tickets = parsed
	}

	detail, err := h.useCase.GetOffer(c.Request().Context(), offerID, tickets)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, detail)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrOfferNotFound) {
		return response.NotFound(c, "Offer not found")
	}

	if errors.Is(err, domain.ErrProviderUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
