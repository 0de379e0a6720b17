package domain

// Result sources reported in search metadata.
const (
	// SourceLive indicates the offers came from the live fare provider.
	SourceLive = "live"

	// SourceSample indicates the offers came from the sample catalog
	// because the live provider was unavailable.
	SourceSample = "sample"
)

// SearchResponse represents the response of an offer search.
type SearchResponse struct {
	// SearchID identifies this search; sample search ids are reversible
	// encodings of the criteria
	SearchID string `json:"search_id"`

	// SearchCriteria echoes the validated search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers contains the priced offers
	Offers []OfferSummary `json:"offers"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of offers returned
	TotalResults int `json:"total_results"`

	// Source is where the offers came from: "live" or "sample"
	Source string `json:"source"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the results came from cache
	CacheHit bool `json:"cache_hit"`
}

// NewSearchResponse creates a SearchResponse with the given criteria, offers,
// and metadata. A nil offer slice is normalized to an empty one so the JSON
// output is always an array.
func NewSearchResponse(searchID string, criteria SearchCriteria, offers []OfferSummary, metadata SearchMetadata) *SearchResponse {
	if offers == nil {
		offers = []OfferSummary{}
	}
	metadata.TotalResults = len(offers)

	return &SearchResponse{
		SearchID:       searchID,
		SearchCriteria: criteria,
		Metadata:       metadata,
		Offers:         offers,
	}
}
