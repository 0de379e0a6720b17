// Package ratelimit throttles outbound calls to fare providers so the service
// stays inside upstream API quotas.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds rate limit settings applied to each provider.
type Config struct {
	// RequestsPerSecond is the sustained request rate per provider.
	RequestsPerSecond float64

	// BurstSize is the maximum burst per provider.
	BurstSize int
}

// DefaultConfig returns conservative defaults suitable for most providers.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// ProviderLimiter maintains one token-bucket limiter per provider name.
// Safe for concurrent use.
type ProviderLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewProviderLimiter creates a ProviderLimiter with the given defaults.
func NewProviderLimiter(cfg Config) *ProviderLimiter {
	return &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// limiter returns the limiter for a provider, creating it on first use.
func (p *ProviderLimiter) limiter(provider string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[provider]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[provider]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[provider] = limiter
	return limiter
}

// SetProviderLimit overrides the limit for a specific provider.
func (p *ProviderLimiter) SetProviderLimit(provider string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limiters[provider] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the provider's limiter permits a request or the context
// is cancelled.
func (p *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return p.limiter(provider).Wait(ctx)
}
