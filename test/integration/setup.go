// Package integration provides helpers and integration tests for the offer
// pricing service. Integration tests verify that the HTTP handlers, use case,
// pricing engine, and sample generator work together correctly.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-offers/offer-pricing-service/internal/adapter/http"
	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/infrastructure/logger"
	"github.com/travel-offers/offer-pricing-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.OfferUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewOfferHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/search",
		Body:   body,
	})
}

// GetOfferRequest fetches a single offer by id.
func (ts *TestServer) GetOfferRequest(path string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseOfferDetail parses the response body as an OfferDetail.
func (r *Response) ParseOfferDetail() (*usecase.OfferDetail, error) {
	var detail usecase.OfferDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Tickets       int     `json:"tickets"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "YYZ",
		Destination:   "LHR",
		DepartureDate: "2026-09-10",
		Tickets:       1,
	}
}

// CreateUseCase creates a use case with the given provider and quiet defaults.
// A nil provider runs the service in sample-only mode.
func CreateUseCase(provider domain.FareProvider) usecase.OfferUseCase {
	return usecase.NewOfferUseCase(provider, nil, nil, nil, logger.Nop(), nil)
}
