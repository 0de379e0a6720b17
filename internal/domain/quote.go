package domain

import "encoding/json"

// Conditions is an opaque fare-conditions blob. The core never inspects it;
// it is carried from the raw quote to the offer summary unchanged.
type Conditions = json.RawMessage

// RawFareQuote is a fare quote in the shape produced by the upstream
// flight-data provider. It is a loose structural mirror: only the fields the
// engine actually reads are declared, nested objects are pointers because
// upstream data tolerates absences, and the engine treats the whole value as
// read-only input.
type RawFareQuote struct {
	// ID is the provider's quote identifier
	ID string `json:"id"`

	// TotalAmount is the fare total as a decimal string
	TotalAmount string `json:"total_amount"`

	// TotalCurrency is the ISO 4217 currency code
	TotalCurrency string `json:"total_currency"`

	// Owner is the selling airline
	Owner *RawCarrier `json:"owner"`

	// Slices are the directional journeys of the itinerary
	Slices []RawSlice `json:"slices"`

	// Conditions is the provider's fare-conditions blob
	Conditions Conditions `json:"conditions,omitempty"`
}

// RawSlice is one directional journey in a raw quote.
type RawSlice struct {
	// ID is the provider's slice identifier
	ID string `json:"id"`

	// Origin is the departure airport of the journey
	Origin *RawAirport `json:"origin"`

	// Destination is the final arrival airport of the journey
	Destination *RawAirport `json:"destination"`

	// Duration is the journey duration as an ISO 8601 duration string
	Duration *string `json:"duration"`

	// Segments are the flight legs in departure order
	Segments []RawSegment `json:"segments"`
}

// RawSegment is a single flight leg in a raw quote.
type RawSegment struct {
	// ID is the provider's segment identifier
	ID string `json:"id"`

	// Origin is the leg's departure airport
	Origin *RawAirport `json:"origin"`

	// Destination is the leg's arrival airport
	Destination *RawAirport `json:"destination"`

	// DepartingAt is the scheduled departure timestamp (ISO 8601)
	DepartingAt *string `json:"departing_at"`

	// ArrivingAt is the scheduled arrival timestamp (ISO 8601)
	ArrivingAt *string `json:"arriving_at"`

	// MarketingCarrier is the carrier selling the leg
	MarketingCarrier *RawCarrier `json:"marketing_carrier"`

	// MarketingCarrierFlightNumber is the flight number under the
	// marketing carrier's code
	MarketingCarrierFlightNumber string `json:"marketing_carrier_flight_number"`

	// OperatingCarrier is the carrier actually flying the leg; absent
	// on some codeshare quotes
	OperatingCarrier *RawCarrier `json:"operating_carrier"`

	// Aircraft is the aircraft assigned to the leg
	Aircraft *RawAircraft `json:"aircraft"`
}

// RawCarrier is an airline reference in a raw quote.
type RawCarrier struct {
	// Name is the airline's display name
	Name string `json:"name"`

	// IATACode is the airline's IATA code
	IATACode string `json:"iata_code"`

	// LogoSymbolURL is an optional logo symbol URL
	LogoSymbolURL string `json:"logo_symbol_url,omitempty"`
}

// RawAirport is an airport reference in a raw quote.
type RawAirport struct {
	// IATACode is the three-letter airport code
	IATACode string `json:"iata_code"`

	// Name is the human-readable airport name, used as a fallback when
	// the code is absent
	Name string `json:"name"`
}

// RawAircraft is an aircraft reference in a raw quote.
type RawAircraft struct {
	// Name is the aircraft model name (e.g., "Airbus A350-900")
	Name string `json:"name"`
}
