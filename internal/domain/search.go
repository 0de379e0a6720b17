package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for an offer search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "YYZ")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format;
	// nil means a one-way search
	ReturnDate *string `json:"return_date,omitempty"`

	// Tickets is the requested ticket count. Markup is always computed
	// per the requested count, never from the provider's passenger list.
	Tickets int `json:"tickets"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departure_date is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departure_date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	departure, err := time.Parse("2006-01-02", s.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departure_date is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	if s.ReturnDate != nil {
		if !dateRegex.MatchString(*s.ReturnDate) {
			return fmt.Errorf("%w: return_date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, *s.ReturnDate)
		}
		ret, err := time.Parse("2006-01-02", *s.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: return_date is not a valid date: %s", ErrInvalidRequest, *s.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: return_date must not be before departure_date", ErrInvalidRequest)
		}
	}

	if s.Tickets < 1 {
		return fmt.Errorf("%w: tickets must be at least 1", ErrInvalidRequest)
	}
	if s.Tickets > 9 {
		return fmt.Errorf("%w: tickets cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Tickets == 0 {
		s.Tickets = 1
	}
}

// IsRoundTrip reports whether the criteria includes an inbound journey.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != nil && *s.ReturnDate != ""
}
