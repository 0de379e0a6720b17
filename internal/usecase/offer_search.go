// Package usecase contains the business logic for offer search and lookup.
// It orchestrates the live fare provider, the search cache, and the sample
// offer fallback, pricing every quote through the pricing engine so the live
// and fallback paths can never disagree on markup.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/cache"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/logger"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/ratelimit"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/timeutil"
	"github.com/travel-offers/offer-pricing-service/internal/pricing"
	"github.com/travel-offers/offer-pricing-service/internal/sample"
)

// DefaultProviderTimeout bounds a live provider search.
const DefaultProviderTimeout = 5 * time.Second

// OfferUseCase defines the offer search and lookup operations.
type OfferUseCase interface {
	// Search returns priced offers for the criteria, from the live
	// provider when it responds and the sample catalog when it does not.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)

	// GetOffer resolves a single offer by id with pricing for the
	// requested ticket count.
	GetOffer(ctx context.Context, offerID string, tickets int) (*OfferDetail, error)
}

// OfferDetail is a single resolved offer plus its ancillary services.
type OfferDetail struct {
	Offer    domain.OfferSummary      `json:"offer"`
	Services []domain.ServiceOffering `json:"services"`
}

// Config contains configuration options for the use case.
type Config struct {
	// ProviderTimeout bounds the live provider search.
	ProviderTimeout time.Duration
}

type offerUseCase struct {
	provider        domain.FareProvider
	cache           cache.SearchCache
	limiter         *ratelimit.ProviderLimiter
	clock           timeutil.Clock
	log             *logger.Logger
	providerTimeout time.Duration
}

// NewOfferUseCase creates an OfferUseCase. The provider may be nil, in which
// case every search serves sample offers; nil cache, limiter, clock, or
// logger fall back to no-op implementations.
func NewOfferUseCase(provider domain.FareProvider, searchCache cache.SearchCache, limiter *ratelimit.ProviderLimiter, clock timeutil.Clock, log *logger.Logger, cfg *Config) OfferUseCase {
	timeout := DefaultProviderTimeout
	if cfg != nil && cfg.ProviderTimeout > 0 {
		timeout = cfg.ProviderTimeout
	}
	if searchCache == nil {
		searchCache = cache.NewNoOpCache()
	}
	if limiter == nil {
		limiter = ratelimit.NewProviderLimiter(ratelimit.DefaultConfig())
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &offerUseCase{
		provider:        provider,
		cache:           searchCache,
		limiter:         limiter,
		clock:           clock,
		log:             log,
		providerTimeout: timeout,
	}
}

// Search implements OfferUseCase.Search.
func (uc *offerUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := uc.cache.Get(ctx, criteria); ok {
		cached.Metadata.CacheHit = true
		cached.Metadata.SearchTimeMs = uc.clock.Now().Sub(start).Milliseconds()
		return cached, nil
	}

	searchID, offers, source := uc.fetchOffers(ctx, criteria)

	resp := domain.NewSearchResponse(searchID, criteria, offers, domain.SearchMetadata{
		Source:       source,
		SearchTimeMs: uc.clock.Now().Sub(start).Milliseconds(),
	})

	// Sample offers are regenerated in microseconds; only live results are
	// worth caching.
	if source == domain.SourceLive {
		if err := uc.cache.Set(ctx, criteria, resp); err != nil {
			uc.log.Warn().Err(err).Msg("Failed to cache search results")
		}
	}

	return resp, nil
}

// fetchOffers queries the live provider and falls back to the sample catalog
// on any failure, preserving the same output contract for both paths.
func (uc *offerUseCase) fetchOffers(ctx context.Context, criteria domain.SearchCriteria) (string, []domain.OfferSummary, string) {
	if uc.provider == nil {
		searchID, offers := sample.Generate(criteria)
		return searchID, offers, domain.SourceSample
	}

	quotes, err := uc.searchLive(ctx, criteria)
	if err != nil {
		uc.log.Warn().
			Err(err).
			Str("provider", uc.provider.Name()).
			Msg("Live fare search failed, serving sample offers")
		searchID, offers := sample.Generate(criteria)
		return searchID, offers, domain.SourceSample
	}

	offers := make([]domain.OfferSummary, 0, len(quotes))
	for _, quote := range quotes {
		offers = append(offers, pricing.Summarise(quote, criteria.Tickets))
	}

	return "srch_" + uuid.NewString(), offers, domain.SourceLive
}

// searchLive runs one rate-limited, timeout-bounded provider search.
func (uc *offerUseCase) searchLive(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RawFareQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	if err := uc.limiter.Wait(ctx, uc.provider.Name()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	return uc.provider.SearchFares(ctx, criteria)
}

// GetOffer implements OfferUseCase.GetOffer. Sample ids resolve locally from
// their encoded parameters; anything else goes to the live provider.
func (uc *offerUseCase) GetOffer(ctx context.Context, offerID string, tickets int) (*OfferDetail, error) {
	if tickets < 1 {
		tickets = 1
	}

	if sample.IsSampleID(offerID) {
		offer, services, err := sample.ResolveByID(offerID, tickets)
		if err != nil {
			return nil, err
		}
		return &OfferDetail{Offer: *offer, Services: services}, nil
	}

	if uc.provider == nil {
		return nil, fmt.Errorf("%w: no live provider configured for %q", domain.ErrOfferNotFound, offerID)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	if err := uc.limiter.Wait(ctx, uc.provider.Name()); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err)
	}

	quote, err := uc.provider.FetchFare(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err)
	}

	offer := pricing.Summarise(*quote, tickets)
	return &OfferDetail{Offer: offer, Services: []domain.ServiceOffering{}}, nil
}

// Ensure offerUseCase implements OfferUseCase at compile time.
var _ OfferUseCase = (*offerUseCase)(nil)
