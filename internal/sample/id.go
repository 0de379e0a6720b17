package sample

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

// Offer and search identifiers are reversible encodings of the generation
// parameters, so a later lookup can regenerate the exact offer without any
// persisted storage. The grammar is:
//
//	smpl~<templateIndex>~<origin>~<destination>~<departureDate>~<returnDate|oneway>
//
// The tilde delimiter cannot appear in IATA codes or ISO dates, so splitting
// is unambiguous. Ids are embedded in URLs bookmarked mid-checkout and must
// stay stable across process restarts.
const (
	idPrefix       = "smpl"
	idDelimiter    = "~"
	onewayToken    = "oneway"
	searchIDMarker = "search"

	idFieldCount = 6
)

// offerParams are the decoded generation parameters of a sample offer id.
type offerParams struct {
	TemplateIndex int
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    *string
}

// EncodeOfferID builds the stable id for the offer generated from the given
// template index and criteria.
func EncodeOfferID(templateIndex int, criteria domain.SearchCriteria) string {
	return strings.Join([]string{
		idPrefix,
		strconv.Itoa(templateIndex),
		criteria.Origin,
		criteria.Destination,
		criteria.DepartureDate,
		returnField(criteria),
	}, idDelimiter)
}

// EncodeSearchID builds the stable id for a sample search over the given
// criteria.
func EncodeSearchID(criteria domain.SearchCriteria) string {
	return strings.Join([]string{
		idPrefix,
		searchIDMarker,
		criteria.Origin,
		criteria.Destination,
		criteria.DepartureDate,
		returnField(criteria),
	}, idDelimiter)
}

// IsSampleID reports whether an offer id was issued by this generator.
func IsSampleID(id string) bool {
	return strings.HasPrefix(id, idPrefix+idDelimiter)
}

// decodeOfferID parses an encoded offer id back into its generation
// parameters. Any id that does not match the grammar yields
// ErrOfferNotFound; decoding never panics.
func decodeOfferID(id string) (offerParams, error) {
	parts := strings.Split(id, idDelimiter)
	if len(parts) != idFieldCount || parts[0] != idPrefix {
		return offerParams{}, fmt.Errorf("%w: malformed offer id %q", domain.ErrOfferNotFound, id)
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return offerParams{}, fmt.Errorf("%w: non-numeric template index in %q", domain.ErrOfferNotFound, id)
	}

	origin, destination := parts[2], parts[3]
	if origin == "" || destination == "" {
		return offerParams{}, fmt.Errorf("%w: missing route in %q", domain.ErrOfferNotFound, id)
	}

	departureDate := parts[4]
	if _, err := time.Parse("2006-01-02", departureDate); err != nil {
		return offerParams{}, fmt.Errorf("%w: bad departure date in %q", domain.ErrOfferNotFound, id)
	}

	params := offerParams{
		TemplateIndex: index,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
	}

	if parts[5] != onewayToken {
		if _, err := time.Parse("2006-01-02", parts[5]); err != nil {
			return offerParams{}, fmt.Errorf("%w: bad return date in %q", domain.ErrOfferNotFound, id)
		}
		ret := parts[5]
		params.ReturnDate = &ret
	}

	return params, nil
}

// returnField encodes the optional return date.
func returnField(criteria domain.SearchCriteria) string {
	if criteria.IsRoundTrip() {
		return *criteria.ReturnDate
	}
	return onewayToken
}
