// Package pricing converts raw provider fare quotes into customer-facing
// priced offers. It is pure computation: no I/O, no side effects, and no
// error returns. Malformed upstream data degrades field by field instead of
// failing, so a bad quote never breaks pricing.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

// Markup policy: a flat per-ticket service fee selected by fare tier.
// Fares at or above the premium threshold carry the higher fee.
var (
	premiumTierThreshold = decimal.NewFromInt(999)
	standardMarkup       = decimal.NewFromInt(75)
	premiumMarkup        = decimal.NewFromInt(100)
)

// ComputeMarkup computes the full price breakdown for a base fare total and a
// requested ticket count. It is deterministic and never fails: an amount that
// does not parse as a non-negative decimal prices as zero, and a ticket count
// below one is clamped to one. All amounts are rounded half-up to two decimal
// places before serialization.
func ComputeMarkup(amount, currency string, tickets int) domain.Pricing {
	if tickets < 1 {
		tickets = 1
	}

	base, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || base.IsNegative() {
		base = decimal.Zero
	}

	perTicket := standardMarkup
	if base.GreaterThanOrEqual(premiumTierThreshold) {
		perTicket = premiumMarkup
	}

	markupTotal := perTicket.Mul(decimal.NewFromInt(int64(tickets))).Round(2)
	displayTotal := base.Add(markupTotal).Round(2)

	return domain.Pricing{
		Currency:           currency,
		BaseTotalAmount:    base.StringFixed(2),
		MarkupPerTicket:    perTicket.StringFixed(2),
		Tickets:            tickets,
		MarkupTotal:        markupTotal.StringFixed(2),
		DisplayTotalAmount: displayTotal.StringFixed(2),
	}
}
