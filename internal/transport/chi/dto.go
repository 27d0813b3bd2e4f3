package chi

import "time"

// ErrorCode identifies an error category in API responses.
type ErrorCode string

const (
	CodeBadRequest             ErrorCode = "bad_request"
	CodeValidationFailed       ErrorCode = "validation_failed"
	CodeCandidateNotFound      ErrorCode = "candidate_not_found"
	CodeEmbeddingProviderError ErrorCode = "embedding_provider_error"
	CodeUpstreamUnavailable    ErrorCode = "upstream_unavailable"
	CodeInternalError          ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope for all non-2xx responses.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SortSpec orders search results by a metadata field instead of relevance.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// SearchFilters carries explicit structured constraints supplied alongside
// the free-text query.
type SearchFilters struct {
	Skills        []string `json:"skills,omitempty"`
	Location      string   `json:"location,omitempty"`
	Education     string   `json:"education,omitempty"`
	MinExperience *int     `json:"min_experience,omitempty"`
	MaxExperience *int     `json:"max_experience,omitempty"`
}

// SearchRequest is the POST /search body.
type SearchRequest struct {
	Query   string         `json:"query"`
	Filters *SearchFilters `json:"filters,omitempty"`
	Sort    *SortSpec      `json:"sort,omitempty"`
}

// CandidateMetadata mirrors the stored candidate fields. Absent fields are
// omitted rather than serialized as empty values.
type CandidateMetadata struct {
	FullName        string   `json:"full_name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	YearsExperience *int     `json:"years_experience,omitempty"`
	Education       string   `json:"education,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// SearchResultItem is one ranked hit in a search response.
type SearchResultItem struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename,omitempty"`
	Score      float64           `json:"score"`
	UploadDate *time.Time        `json:"upload_date,omitempty"`
	Metadata   CandidateMetadata `json:"metadata"`
}

// SearchResponse is the POST /search response body.
type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Total int                `json:"total"`
}

// RawCandidateMetadata accepts metadata as extracted upstream. Skills may be
// a string or an array; education may be a string or a structured object.
type RawCandidateMetadata struct {
	FullName        string `json:"full_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Skills          any    `json:"skills,omitempty"`
	YearsExperience *int   `json:"years_experience,omitempty"`
	Education       any    `json:"education,omitempty"`
	Location        string `json:"location,omitempty"`
}

// StoreCandidateRequest is the POST /candidates body.
type StoreCandidateRequest struct {
	FullText   string               `json:"full_text"`
	Filename   string               `json:"filename,omitempty"`
	StoredFile string               `json:"stored_file,omitempty"`
	Metadata   RawCandidateMetadata `json:"metadata,omitempty"`
}

// StoreCandidateResponse is the POST /candidates response body.
type StoreCandidateResponse struct {
	ID string `json:"id"`
}

// CandidateResponse is a single stored candidate.
type CandidateResponse struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename,omitempty"`
	StoredFile string            `json:"stored_file,omitempty"`
	UploadDate time.Time         `json:"upload_date"`
	Metadata   CandidateMetadata `json:"metadata"`
}

// CandidateListResponse is the GET /candidates response body.
type CandidateListResponse struct {
	Items  []CandidateResponse `json:"items"`
	Total  int                 `json:"total"`
	Offset int                 `json:"offset"`
	Limit  int                 `json:"limit"`
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
