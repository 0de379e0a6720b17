package domain

import "errors"

// Sentinel errors for the offer pricing service. Handlers map these to HTTP
// status codes with errors.Is; everything else is an internal error.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrOfferNotFound indicates an offer id could not be resolved, either
	// because it does not parse or because the provider no longer knows it.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrProviderUnavailable indicates the live fare provider failed and no
	// fallback could be produced.
	ErrProviderUnavailable = errors.New("fare provider unavailable")
)
