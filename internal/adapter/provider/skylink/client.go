// Package skylink implements the FareProvider contract against the Skylink
// fare-search API. It fetches raw quotes only; pricing happens downstream in
// the pricing engine.
package skylink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Skylink provider.
const ProviderName = "skylink"

// defaultTimeout bounds a single HTTP attempt when the config omits one.
const defaultTimeout = 10 * time.Second

// Config holds the Skylink API connection settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.skylink.example".
	BaseURL string

	// APIToken is the bearer token for authentication.
	APIToken string

	// Timeout bounds each HTTP attempt.
	Timeout time.Duration
}

// Client is a FareProvider backed by the Skylink HTTP API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient creates a Skylink client with the given configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.ProviderConfig,
	}
}

// Name implements domain.FareProvider.
func (c *Client) Name() string {
	return ProviderName
}

// searchRequest is the Skylink search request body.
type searchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Passengers    int     `json:"passengers"`
}

// searchEnvelope is the Skylink search response body.
type searchEnvelope struct {
	Data struct {
		Offers []domain.RawFareQuote `json:"offers"`
	} `json:"data"`
}

// offerEnvelope is the Skylink single-offer response body.
type offerEnvelope struct {
	Data domain.RawFareQuote `json:"data"`
}

// SearchFares implements domain.FareProvider. Transient upstream failures are
// retried with backoff; client errors are not.
func (c *Client) SearchFares(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RawFareQuote, error) {
	body, err := json.Marshal(searchRequest{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Passengers:    criteria.Tickets,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	return retry.DoWithResult(ctx, func() ([]domain.RawFareQuote, error) {
		var envelope searchEnvelope
		if err := c.post(ctx, "/air/fares/search", body, &envelope); err != nil {
			return nil, err
		}
		return envelope.Data.Offers, nil
	}, c.retryCfg)
}

// FetchFare implements domain.FareProvider. A 404 from the provider maps to
// domain.ErrOfferNotFound.
func (c *Client) FetchFare(ctx context.Context, offerID string) (*domain.RawFareQuote, error) {
	return retry.DoWithResult(ctx, func() (*domain.RawFareQuote, error) {
		var envelope offerEnvelope
		if err := c.get(ctx, "/air/fares/offers/"+offerID, &envelope); err != nil {
			return nil, err
		}
		return &envelope.Data, nil
	}, c.retryCfg)
}

// post sends a JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// get sends a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}

	return c.do(req, out)
}

// do executes a request with auth headers and maps the status code: 5xx is
// retryable, 404 is a permanent not-found, any other non-2xx is a permanent
// failure.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", ProviderName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s returned status %d", ProviderName, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return retry.NewPermanent(domain.ErrOfferNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return retry.NewPermanent(fmt.Errorf("%s returned status %d", ProviderName, resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", ProviderName, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return retry.NewPermanent(fmt.Errorf("decode %s response: %w", ProviderName, err))
	}

	return nil
}

// Ensure Client implements domain.FareProvider at compile time.
var _ domain.FareProvider = (*Client)(nil)
