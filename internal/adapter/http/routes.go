// Package http provides the HTTP handler layer for the offer pricing API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all offer API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *OfferHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Offers group
	offers := api.Group("/offers")
	offers.POST("/search", h.SearchOffers)
	offers.GET("/:id", h.GetOffer)
}
