package pricing

import (
	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

// Summarise converts a raw fare quote plus a requested ticket count into a
// normalized OfferSummary. The quote is treated as read-only; missing nested
// fields become nil on the corresponding summary field rather than fabricated
// defaults. The ticket count is always the caller's requested count; the
// quote's own passenger list is deliberately ignored for markup purposes.
func Summarise(quote domain.RawFareQuote, tickets int) domain.OfferSummary {
	slices := make([]domain.SliceSummary, 0, len(quote.Slices))
	for _, s := range quote.Slices {
		slices = append(slices, summariseSlice(s))
	}

	return domain.OfferSummary{
		ID:         quote.ID,
		Slices:     slices,
		Owner:      summariseOwner(quote.Owner),
		Pricing:    ComputeMarkup(quote.TotalAmount, quote.TotalCurrency, tickets),
		Conditions: quote.Conditions,
	}
}

// summariseSlice flattens one raw slice, preserving segment order.
func summariseSlice(s domain.RawSlice) domain.SliceSummary {
	segments := make([]domain.SegmentSummary, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segments = append(segments, summariseSegment(seg))
	}

	return domain.SliceSummary{
		ID:          s.ID,
		Origin:      airportRef(s.Origin),
		Destination: airportRef(s.Destination),
		Duration:    s.Duration,
		Segments:    segments,
	}
}

// summariseSegment flattens one raw segment's nested carrier, airport and
// aircraft objects into scalar fields.
func summariseSegment(seg domain.RawSegment) domain.SegmentSummary {
	summary := domain.SegmentSummary{
		ID:              seg.ID,
		MarketingFlight: marketingFlight(seg),
		CarrierName:     carrierName(seg),
		DepartingAt:     seg.DepartingAt,
		ArrivingAt:      seg.ArrivingAt,
		Origin:          airportRef(seg.Origin),
		Destination:     airportRef(seg.Destination),
	}

	if seg.Aircraft != nil && seg.Aircraft.Name != "" {
		name := seg.Aircraft.Name
		summary.AircraftName = &name
	}

	return summary
}

// marketingFlight builds the display flight number by concatenating the
// marketing carrier's IATA code and the flight number, with no separator.
// Returns nil when either part is missing: a partial identifier like "849"
// is worse than none.
func marketingFlight(seg domain.RawSegment) *string {
	if seg.MarketingCarrier == nil || seg.MarketingCarrier.IATACode == "" {
		return nil
	}
	if seg.MarketingCarrierFlightNumber == "" {
		return nil
	}
	flight := seg.MarketingCarrier.IATACode + seg.MarketingCarrierFlightNumber
	return &flight
}

// carrierName resolves the displayed carrier. The operating carrier takes
// precedence because it reflects who actually flies the route; the marketing
// carrier is the fallback for codeshare quotes lacking operating data.
func carrierName(seg domain.RawSegment) *string {
	if seg.OperatingCarrier != nil && seg.OperatingCarrier.Name != "" {
		name := seg.OperatingCarrier.Name
		return &name
	}
	if seg.MarketingCarrier != nil && seg.MarketingCarrier.Name != "" {
		name := seg.MarketingCarrier.Name
		return &name
	}
	return nil
}

// airportRef resolves an airport reference to its IATA code, falling back to
// the human-readable name when the code is absent.
func airportRef(a *domain.RawAirport) *string {
	if a == nil {
		return nil
	}
	if a.IATACode != "" {
		code := a.IATACode
		return &code
	}
	if a.Name != "" {
		name := a.Name
		return &name
	}
	return nil
}

// summariseOwner flattens the owning carrier; a missing owner yields an empty
// OfferOwner rather than a nil reference.
func summariseOwner(owner *domain.RawCarrier) domain.OfferOwner {
	if owner == nil {
		return domain.OfferOwner{}
	}
	return domain.OfferOwner{
		Name:          owner.Name,
		IATACode:      owner.IATACode,
		LogoSymbolURL: owner.LogoSymbolURL,
	}
}
