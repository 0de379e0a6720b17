package domain

import "context"

// FareProvider is the narrow contract to the external flight-search
// collaborator. Implementations fetch raw fare quotes; they never price them.
type FareProvider interface {
	// Name returns the provider's unique identifier for logging and
	// rate limiting.
	Name() string

	// SearchFares fetches raw fare quotes for the given criteria.
	// The returned quotes are unpriced provider data.
	SearchFares(ctx context.Context, criteria SearchCriteria) ([]RawFareQuote, error)

	// FetchFare fetches a single raw fare quote by its provider id.
	// Returns ErrOfferNotFound (possibly wrapped) when the provider no
	// longer knows the id.
	FetchFare(ctx context.Context, offerID string) (*RawFareQuote, error)
}
