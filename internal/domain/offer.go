// Package domain contains the core business entities and rules for the offer
// pricing service. These entities are provider-agnostic: they describe the
// customer-facing priced offer, not the upstream provider's wire format.
package domain

// Pricing is the fully computed price breakdown for an offer.
// All monetary fields are 2-decimal strings in the offer's currency.
// A Pricing value is immutable once computed and safe to cache by
// (offer id, tickets).
type Pricing struct {
	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// BaseTotalAmount is the provider's fare total before markup
	BaseTotalAmount string `json:"base_total_amount"`

	// MarkupPerTicket is the flat service fee applied per ticket
	MarkupPerTicket string `json:"markup_per_ticket"`

	// Tickets is the requested ticket count (always >= 1)
	Tickets int `json:"tickets"`

	// MarkupTotal is MarkupPerTicket multiplied by Tickets
	MarkupTotal string `json:"markup_total"`

	// DisplayTotalAmount is BaseTotalAmount plus MarkupTotal; this is
	// the amount shown to the customer and charged at checkout
	DisplayTotalAmount string `json:"display_total_amount"`
}

// SegmentSummary is a single flight leg flattened from the provider's nested
// carrier/airport/aircraft objects. Every field except ID is nullable because
// upstream data is not guaranteed complete.
type SegmentSummary struct {
	// ID is the provider's segment identifier
	ID string `json:"id"`

	// MarketingFlight is the marketing carrier IATA code concatenated with
	// the flight number (e.g., "AC849"). Nil when either part is missing;
	// a partial identifier is never produced.
	MarketingFlight *string `json:"marketing_flight"`

	// CarrierName is the operating carrier name, falling back to the
	// marketing carrier name for codeshare quotes
	CarrierName *string `json:"carrier_name"`

	// DepartingAt is the scheduled departure timestamp (ISO 8601)
	DepartingAt *string `json:"departing_at"`

	// ArrivingAt is the scheduled arrival timestamp (ISO 8601)
	ArrivingAt *string `json:"arriving_at"`

	// Origin is the IATA code of the departure airport
	Origin *string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination *string `json:"destination"`

	// AircraftName is the aircraft model, when the provider supplies it
	AircraftName *string `json:"aircraft_name"`
}

// SliceSummary is one directional journey (outbound or inbound).
// Segments are kept in flight order, never reordered.
type SliceSummary struct {
	// ID is the provider's slice identifier
	ID string `json:"id"`

	// Origin is the IATA code (or airport name, if no code) of the
	// journey's first departure point
	Origin *string `json:"origin"`

	// Destination is the IATA code (or airport name) of the journey's
	// final arrival point
	Destination *string `json:"destination"`

	// Duration is the total journey duration as an ISO 8601 duration
	// string (e.g., "PT7H55M")
	Duration *string `json:"duration"`

	// Segments are the individual flight legs in departure order
	Segments []SegmentSummary `json:"segments"`
}

// OfferOwner identifies the airline selling the offer.
type OfferOwner struct {
	// Name is the airline's display name
	Name string `json:"name"`

	// IATACode is the airline's two or three character IATA code
	IATACode string `json:"iata_code"`

	// LogoSymbolURL is an optional URL to the airline's logo symbol
	LogoSymbolURL string `json:"logo_symbol_url"`
}

// ServiceOffering is an ancillary service (e.g., checked baggage) that can be
// added to an offer for a flat per-passenger amount.
type ServiceOffering struct {
	// ID identifies the service within its offer
	ID string `json:"id"`

	// Type is the service category (e.g., "baggage", "seat")
	Type string `json:"type"`

	// Description is the customer-facing service description
	Description string `json:"description"`

	// Amount is the per-passenger price as a 2-decimal string
	Amount string `json:"amount"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`
}

// OfferSummary is the normalized, customer-facing priced offer. It is the
// output contract of the pricing engine: fully populated, JSON-serializable,
// with no provider-specific field names leaking through. Once returned, the
// caller owns it exclusively.
type OfferSummary struct {
	// ID is the offer identifier, stable for the lifetime of a checkout
	ID string `json:"id"`

	// Slices are the directional journeys, outbound first and inbound
	// second for round trips
	Slices []SliceSummary `json:"slices"`

	// Owner is the selling airline
	Owner OfferOwner `json:"owner"`

	// Pricing is the computed price breakdown including service markup
	Pricing Pricing `json:"pricing"`

	// Conditions is the provider's fare-condition blob, passed through
	// opaquely for display at checkout
	Conditions Conditions `json:"conditions"`
}
