// Package sample synthesizes a small deterministic catalog of fare quotes for
// a given route and date. It is the fallback path when the live fare provider
// is unavailable and the demo path when no provider is configured. The
// generator is strictly a raw-quote producer: every synthetic quote is priced
// through the same pricing engine as live data, so the two paths can never
// disagree on markup.
package sample

// segmentTemplate describes one leg of a synthetic journey relative to the
// slice departure: when it leaves and how long it flies.
type segmentTemplate struct {
	// offsetMin is the departure offset in minutes from the slice's
	// departure time of day. The first segment is always offset 0.
	offsetMin int

	// durationMin is the flying time in minutes.
	durationMin int

	// flightNumber is the numeric part of the marketing flight number.
	flightNumber string
}

// sliceTemplate describes the shape of a synthetic directional journey.
type sliceTemplate struct {
	// departureMinuteOfDay is the slice departure time as minutes after
	// midnight UTC on the requested date.
	departureMinuteOfDay int

	segments []segmentTemplate
}

// serviceTemplate describes an ancillary service offered with a template.
type serviceTemplate struct {
	serviceType string
	description string
	amount      string
}

// offerTemplate is one fictitious carrier's catalog entry.
type offerTemplate struct {
	ownerName     string
	ownerIATA     string
	logoSymbolURL string

	// baseFarePerTicket is the flat fare per passenger as a decimal string.
	baseFarePerTicket string
	currency          string

	// connection is the layover airport for one-stop shapes; empty means
	// non-stop.
	connection string

	aircraftName string

	outbound sliceTemplate

	// inbound, when nil, mirrors the outbound shape on the return date.
	inbound *sliceTemplate

	// conditions is the raw fare-conditions JSON passed through to offers.
	conditions string

	services []serviceTemplate
}

// catalog is the fixed set of offer templates. It is process-wide constant
// state: initialized once, read concurrently without locks, never mutated.
var catalog = []offerTemplate{
	{
		ownerName:         "Arrowline",
		ownerIATA:         "AW",
		logoSymbolURL:     "https://assets.travel-offers.example/airlines/AW.svg",
		baseFarePerTicket: "645.50",
		currency:          "USD",
		aircraftName:      "Airbus A330-300",
		outbound: sliceTemplate{
			departureMinuteOfDay: 7*60 + 45,
			segments: []segmentTemplate{
				{offsetMin: 0, durationMin: 475, flightNumber: "204"},
			},
		},
		conditions: `{"change_before_departure":{"allowed":true,"penalty_amount":"150.00","penalty_currency":"USD"},"refund_before_departure":{"allowed":false}}`,
		services: []serviceTemplate{
			{serviceType: "baggage", description: "Checked bag up to 23kg", amount: "45.00"},
		},
	},
	{
		ownerName:         "Northbridge Air",
		ownerIATA:         "NB",
		logoSymbolURL:     "https://assets.travel-offers.example/airlines/NB.svg",
		baseFarePerTicket: "512.75",
		currency:          "USD",
		connection:        "KEF",
		aircraftName:      "Boeing 757-200",
		outbound: sliceTemplate{
			departureMinuteOfDay: 9*60 + 30,
			segments: []segmentTemplate{
				{offsetMin: 0, durationMin: 260, flightNumber: "611"},
				{offsetMin: 335, durationMin: 225, flightNumber: "847"},
			},
		},
		conditions: `{"change_before_departure":{"allowed":false},"refund_before_departure":{"allowed":false}}`,
		services: []serviceTemplate{
			{serviceType: "baggage", description: "Checked bag up to 23kg", amount: "35.00"},
			{serviceType: "seat", description: "Standard seat selection", amount: "19.50"},
		},
	},
	{
		ownerName:         "Meridian Select",
		ownerIATA:         "MS",
		logoSymbolURL:     "https://assets.travel-offers.example/airlines/MS.svg",
		baseFarePerTicket: "1189.00",
		currency:          "USD",
		aircraftName:      "Boeing 787-9",
		outbound: sliceTemplate{
			departureMinuteOfDay: 18*60 + 20,
			segments: []segmentTemplate{
				{offsetMin: 0, durationMin: 465, flightNumber: "92"},
			},
		},
		inbound: &sliceTemplate{
			departureMinuteOfDay: 11*60 + 10,
			segments: []segmentTemplate{
				{offsetMin: 0, durationMin: 490, flightNumber: "93"},
			},
		},
		conditions: `{"change_before_departure":{"allowed":true,"penalty_amount":"0.00","penalty_currency":"USD"},"refund_before_departure":{"allowed":true,"penalty_amount":"250.00","penalty_currency":"USD"}}`,
		services: []serviceTemplate{
			{serviceType: "lounge", description: "Departure lounge access", amount: "65.00"},
		},
	},
}

// CatalogSize returns the number of templates in the fixed catalog.
func CatalogSize() int {
	return len(catalog)
}
