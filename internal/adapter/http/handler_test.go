package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-offers/offer-pricing-service/internal/adapter/http/response"
	"github.com/travel-offers/offer-pricing-service/internal/domain"
	"github.com/travel-offers/offer-pricing-service/internal/usecase"
)

// mockUseCase is a mock implementation of OfferUseCase for testing.
type mockUseCase struct {
	searchFunc   func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
	getOfferFunc func(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error)
}

func (m *mockUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, criteria)
	}
	return domain.NewSearchResponse("srch_test", criteria, []domain.OfferSummary{}, domain.SearchMetadata{
		Source: domain.SourceSample,
	}), nil
}

func (m *mockUseCase) GetOffer(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error) {
	if m.getOfferFunc != nil {
		return m.getOfferFunc(ctx, offerID, tickets)
	}
	return &usecase.OfferDetail{
		Offer:    domain.OfferSummary{ID: offerID},
		Services: []domain.ServiceOffering{},
	}, nil
}

// setupTestHandler creates a test Echo instance and OfferHandler.
func setupTestHandler(uc usecase.OfferUseCase) *echo.Echo {
	e := echo.New()
	h := NewOfferHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validSearchRequest() SearchOffersRequest {
	return SearchOffersRequest{
		Origin:        "YYZ",
		Destination:   "LHR",
		DepartureDate: "2026-09-10",
		Tickets:       2,
	}
}

func TestSearchOffers_Success(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			offers := []domain.OfferSummary{
				{
					ID:    "off_1",
					Owner: domain.OfferOwner{Name: "Arrowline", IATACode: "AW"},
					Pricing: domain.Pricing{
						Currency:           "USD",
						BaseTotalAmount:    "1291.00",
						MarkupPerTicket:    "100.00",
						Tickets:            2,
						MarkupTotal:        "200.00",
						DisplayTotalAmount: "1491.00",
					},
				},
			}
			return domain.NewSearchResponse("srch_test", criteria, offers, domain.SearchMetadata{
				Source: domain.SourceLive,
			}), nil
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/search", validSearchRequest())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Metadata.TotalResults)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "1491.00", resp.Offers[0].Pricing.DisplayTotalAmount)
}

func TestSearchOffers_InvalidJSON(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/search",
		strings.NewReader(`{invalid json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
}

func TestSearchOffers_ValidationErrors(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	tests := []struct {
		name          string
		mutate        func(*SearchOffersRequest)
		expectedField string
	}{
		{
			name:          "missing origin",
			mutate:        func(r *SearchOffersRequest) { r.Origin = "" },
			expectedField: "origin",
		},
		{
			name:          "invalid origin",
			mutate:        func(r *SearchOffersRequest) { r.Origin = "YY1" },
			expectedField: "origin",
		},
		{
			name:          "missing destination",
			mutate:        func(r *SearchOffersRequest) { r.Destination = "" },
			expectedField: "destination",
		},
		{
			name:          "same origin and destination",
			mutate:        func(r *SearchOffersRequest) { r.Destination = "YYZ" },
			expectedField: "destination",
		},
		{
			name:          "bad departure date",
			mutate:        func(r *SearchOffersRequest) { r.DepartureDate = "10-09-2026" },
			expectedField: "departure_date",
		},
		{
			name: "return before departure",
			mutate: func(r *SearchOffersRequest) {
				ret := "2026-09-01"
				r.ReturnDate = &ret
			},
			expectedField: "return_date",
		},
		{
			name:          "too many tickets",
			mutate:        func(r *SearchOffersRequest) { r.Tickets = 10 },
			expectedField: "tickets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.mutate(&req)

			rec := makeRequest(e, http.MethodPost, "/api/v1/offers/search", req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, response.CodeValidationError, errResp.Code)
			assert.Contains(t, errResp.Details, tt.expectedField)
		})
	}
}

func TestSearchOffers_LowercaseAirportsNormalized(t *testing.T) {
	var captured domain.SearchCriteria
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			captured = criteria
			return domain.NewSearchResponse("srch_test", criteria, nil, domain.SearchMetadata{}), nil
		},
	}

	e := setupTestHandler(mock)

	req := validSearchRequest()
	req.Origin = "yyz"
	req.Destination = "lhr"

	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/search", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "YYZ", captured.Origin)
	assert.Equal(t, "LHR", captured.Destination)
}

func TestSearchOffers_Timeout(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/search", validSearchRequest())

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeTimeout, errResp.Code)
}

func TestSearchOffers_EmptyResults(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})
	rec := makeRequest(e, http.MethodPost, "/api/v1/offers/search", validSearchRequest())

	// Empty results still return 200 with an empty offers array.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"offers":[]`)
}

func TestGetOffer_Success(t *testing.T) {
	var capturedID string
	var capturedTickets int
	mock := &mockUseCase{
		getOfferFunc: func(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error) {
			capturedID = offerID
			capturedTickets = tickets
			return &usecase.OfferDetail{
				Offer:    domain.OfferSummary{ID: offerID},
				Services: []domain.ServiceOffering{},
			}, nil
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodGet, "/api/v1/offers/off_123?tickets=3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "off_123", capturedID)
	assert.Equal(t, 3, capturedTickets)
}

func TestGetOffer_DefaultsTickets(t *testing.T) {
	var capturedTickets int
	mock := &mockUseCase{
		getOfferFunc: func(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error) {
			capturedTickets = tickets
			return &usecase.OfferDetail{Services: []domain.ServiceOffering{}}, nil
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodGet, "/api/v1/offers/off_123", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, capturedTickets)
}

func TestGetOffer_InvalidTickets(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	for _, q := range []string{"tickets=0", "tickets=10", "tickets=abc"} {
		rec := makeRequest(e, http.MethodGet, "/api/v1/offers/off_123?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestGetOffer_NotFound(t *testing.T) {
	mock := &mockUseCase{
		getOfferFunc: func(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error) {
			return nil, domain.ErrOfferNotFound
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodGet, "/api/v1/offers/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeNotFound, errResp.Code)
}

func TestGetOffer_ProviderUnavailable(t *testing.T) {
	mock := &mockUseCase{
		getOfferFunc: func(ctx context.Context, offerID string, tickets int) (*usecase.OfferDetail, error) {
			return nil, domain.ErrProviderUnavailable
		},
	}

	e := setupTestHandler(mock)
	rec := makeRequest(e, http.MethodGet, "/api/v1/offers/off_123", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeServiceUnavailable, errResp.Code)
}

func TestHealth_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestSearchOffersRequest_Validate_MultipleErrors(t *testing.T) {
	req := SearchOffersRequest{}

	err := req.Validate()
	require.Error(t, err)

	var validationErrs *ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	details := validationErrs.ToMap()
	assert.Contains(t, details, "origin")
	assert.Contains(t, details, "destination")
	assert.Contains(t, details, "departure_date")
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewOfferHandler(&mockUseCase{})

	RegisterRoutes(e, h)

	expected := map[string]string{
		"/health":               http.MethodGet,
		"/api/v1/offers/search": http.MethodPost,
		"/api/v1/offers/:id":    http.MethodGet,
	}

	for path, method := range expected {
		found := false
		for _, r := range e.Routes() {
			if r.Path == path && r.Method == method {
				found = true
				break
			}
		}
		assert.True(t, found, "expected route %s %s not found", method, path)
	}
}
