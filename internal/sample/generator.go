package sample

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/pricing"
)

// timestampLayout renders synthetic timestamps in UTC. The generator is
// stateless, so working in UTC avoids timezone ambiguity entirely.
const timestampLayout = "2006-01-02T15:04:05Z"

// Generate synthesizes one priced offer per catalog template for the given
// criteria. Both operations in this package are pure transformations keyed by
// their arguments and the fixed catalog: same criteria, same output, byte for
// byte.
func Generate(criteria domain.SearchCriteria) (string, []domain.OfferSummary) {
	tickets := criteria.Tickets
	if tickets < 1 {
		tickets = 1
	}

	offers := make([]domain.OfferSummary, 0, len(catalog))
	for i, tmpl := range catalog {
		quote := buildQuote(i, tmpl, criteria)
		offers = append(offers, pricing.Summarise(quote, tickets))
	}

	return EncodeSearchID(criteria), offers
}

// ResolveByID decodes a sample offer id and regenerates that single offer
// plus its ancillary-service list. Regeneration is idempotent: nothing is
// persisted, everything is recomputed from the id's encoded parameters.
// Unparseable ids yield domain.ErrOfferNotFound.
func ResolveByID(offerID string, tickets int) (*domain.OfferSummary, []domain.ServiceOffering, error) {
	params, err := decodeOfferID(offerID)
	if err != nil {
		return nil, nil, err
	}

	if tickets < 1 {
		tickets = 1
	}

	criteria := domain.SearchCriteria{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Tickets:       tickets,
	}

	// Defensive modulo: ids issued against an older, smaller catalog keep
	// resolving if the catalog grows.
	index := params.TemplateIndex % len(catalog)
	tmpl := catalog[index]

	quote := buildQuote(index, tmpl, criteria)
	offer := pricing.Summarise(quote, tickets)

	return &offer, buildServices(offer.ID, tmpl), nil
}

// buildQuote synthesizes the raw fare quote for one template. The quote goes
// through pricing.Summarise like any live quote; the generator never computes
// its own markup.
func buildQuote(index int, tmpl offerTemplate, criteria domain.SearchCriteria) domain.RawFareQuote {
	offerID := EncodeOfferID(index, criteria)

	tickets := criteria.Tickets
	if tickets < 1 {
		tickets = 1
	}

	fare, err := decimal.NewFromString(tmpl.baseFarePerTicket)
	if err != nil {
		fare = decimal.Zero
	}
	total := fare.Mul(decimal.NewFromInt(int64(tickets))).StringFixed(2)

	owner := &domain.RawCarrier{
		Name:          tmpl.ownerName,
		IATACode:      tmpl.ownerIATA,
		LogoSymbolURL: tmpl.logoSymbolURL,
	}

	slices := []domain.RawSlice{
		buildSlice(offerID, 0, tmpl, tmpl.outbound, criteria.Origin, criteria.Destination, criteria.DepartureDate),
	}

	if criteria.IsRoundTrip() {
		inbound := tmpl.inbound
		if inbound == nil {
			inbound = &tmpl.outbound
		}
		slices = append(slices,
			buildSlice(offerID, 1, tmpl, *inbound, criteria.Destination, criteria.Origin, *criteria.ReturnDate))
	}

	return domain.RawFareQuote{
		ID:            offerID,
		TotalAmount:   total,
		TotalCurrency: tmpl.currency,
		Owner:         owner,
		Slices:        slices,
		Conditions:    json.RawMessage(tmpl.conditions),
	}
}

// buildSlice synthesizes one directional journey. Segment timestamps are the
// requested date plus the template's time of day and per-segment offsets, all
// in UTC; the slice duration is the wall-clock span from first departure to
// last arrival.
func buildSlice(offerID string, position int, tmpl offerTemplate, shape sliceTemplate, origin, destination, date string) domain.RawSlice {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Time{}
	}

	sliceID := fmt.Sprintf("%s_sl%d", offerID, position)
	carrier := &domain.RawCarrier{Name: tmpl.ownerName, IATACode: tmpl.ownerIATA}

	segments := make([]domain.RawSegment, 0, len(shape.segments))
	var firstDeparture, lastArrival time.Time

	for i, st := range shape.segments {
		departing := day.Add(time.Duration(shape.departureMinuteOfDay+st.offsetMin) * time.Minute)
		arriving := departing.Add(time.Duration(st.durationMin) * time.Minute)

		if i == 0 {
			firstDeparture = departing
		}
		lastArrival = arriving

		segOrigin := tmpl.connection
		if i == 0 {
			segOrigin = origin
		}
		segDestination := tmpl.connection
		if i == len(shape.segments)-1 {
			segDestination = destination
		}

		departingAt := departing.UTC().Format(timestampLayout)
		arrivingAt := arriving.UTC().Format(timestampLayout)

		segments = append(segments, domain.RawSegment{
			ID:                           fmt.Sprintf("%s_sg%d", sliceID, i),
			Origin:                       &domain.RawAirport{IATACode: segOrigin},
			Destination:                  &domain.RawAirport{IATACode: segDestination},
			DepartingAt:                  &departingAt,
			ArrivingAt:                   &arrivingAt,
			MarketingCarrier:             carrier,
			MarketingCarrierFlightNumber: st.flightNumber,
			OperatingCarrier:             carrier,
			Aircraft:                     &domain.RawAircraft{Name: tmpl.aircraftName},
		})
	}

	duration := formatISODuration(lastArrival.Sub(firstDeparture))

	return domain.RawSlice{
		ID:          sliceID,
		Origin:      &domain.RawAirport{IATACode: origin},
		Destination: &domain.RawAirport{IATACode: destination},
		Duration:    &duration,
		Segments:    segments,
	}
}

// buildServices materializes a template's ancillary services for an offer.
func buildServices(offerID string, tmpl offerTemplate) []domain.ServiceOffering {
	services := make([]domain.ServiceOffering, 0, len(tmpl.services))
	for i, st := range tmpl.services {
		services = append(services, domain.ServiceOffering{
			ID:          fmt.Sprintf("%s_sv%d", offerID, i),
			Type:        st.serviceType,
			Description: st.description,
			Amount:      st.amount,
			Currency:    tmpl.currency,
		})
	}
	return services
}

// formatISODuration renders a duration as an ISO 8601 string, e.g. "PT7H55M".
func formatISODuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 0 {
		minutes = 0
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("PT%dH%dM", hours, mins)
	case hours > 0:
		return fmt.Sprintf("PT%dH", hours)
	default:
		return fmt.Sprintf("PT%dM", mins)
	}
}
