package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

func criteria(origin, dest, date string, tickets int) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        origin,
		Destination:   dest,
		DepartureDate: date,
		Tickets:       tickets,
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	a := cacheKey(criteria("YYZ", "LHR", "2026-09-10", 2))
	b := cacheKey(criteria("YYZ", "LHR", "2026-09-10", 2))
	assert.Equal(t, a, b)
}

func TestCacheKey_VariesWithCriteria(t *testing.T) {
	base := cacheKey(criteria("YYZ", "LHR", "2026-09-10", 2))

	assert.NotEqual(t, base, cacheKey(criteria("YVR", "LHR", "2026-09-10", 2)), "origin")
	assert.NotEqual(t, base, cacheKey(criteria("YYZ", "CDG", "2026-09-10", 2)), "destination")
	assert.NotEqual(t, base, cacheKey(criteria("YYZ", "LHR", "2026-09-11", 2)), "date")
	assert.NotEqual(t, base, cacheKey(criteria("YYZ", "LHR", "2026-09-10", 3)), "tickets affect pricing")

	withReturn := criteria("YYZ", "LHR", "2026-09-10", 2)
	ret := "2026-09-17"
	withReturn.ReturnDate = &ret
	assert.NotEqual(t, base, cacheKey(withReturn), "return date")
}

func TestCacheKey_Prefix(t *testing.T) {
	key := cacheKey(criteria("YYZ", "LHR", "2026-09-10", 1))
	assert.Contains(t, key, "offers:")
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	crit := criteria("YYZ", "LHR", "2026-09-10", 1)

	resp, ok := c.Get(ctx, crit)
	assert.False(t, ok)
	assert.Nil(t, resp)

	err := c.Set(ctx, crit, &domain.SearchResponse{SearchID: "srch_1"})
	assert.NoError(t, err)

	// Still a miss after Set.
	_, ok = c.Get(ctx, crit)
	assert.False(t, ok)

	assert.NoError(t, c.Close())
}
