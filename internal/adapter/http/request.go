// Package http provides the HTTP handler layer for the offer pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

// SearchOffersRequest represents the request body for offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "YYZ")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional return date for round trips
	ReturnDate *string `json:"return_date,omitempty"`

	// Tickets is the number of tickets to price (1-9, defaults to 1)
	Tickets int `json:"tickets"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport codes are normalized to uppercase as a side effect.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDepartureDate(errs)
	r.validateReturnDate(errs)
	r.validateTickets(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchOffersRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchOffersRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchOffersRequest) validateDepartureDate(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departure_date", "departure_date is required")
		return
	}

	if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departure_date", "departure_date must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departure_date", "departure_date is not a valid date")
	}
}

func (r *SearchOffersRequest) validateReturnDate(errs *ValidationErrors) {
	if r.ReturnDate == nil {
		return
	}

	ret := *r.ReturnDate
	if !datePattern.MatchString(ret) {
		errs.Add("return_date", "return_date must be in YYYY-MM-DD format")
		return
	}

	parsed, err := time.Parse("2006-01-02", ret)
	if err != nil {
		errs.Add("return_date", "return_date is not a valid date")
		return
	}

	if r.DepartureDate != "" {
		if dep, err := time.Parse("2006-01-02", r.DepartureDate); err == nil && parsed.Before(dep) {
			errs.Add("return_date", "return_date must be on or after departure_date")
		}
	}
}

func (r *SearchOffersRequest) validateTickets(errs *ValidationErrors) {
	// Zero means "not provided" and defaults to 1 downstream.
	if r.Tickets < 0 {
		errs.Add("tickets", "tickets must be at least 1")
		return
	}
	if r.Tickets > 9 {
		errs.Add("tickets", "tickets cannot exceed 9")
	}
}

// ToDomainCriteria converts a validated request into domain search criteria.
func ToDomainCriteria(r *SearchOffersRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Tickets:       r.Tickets,
	}
}
