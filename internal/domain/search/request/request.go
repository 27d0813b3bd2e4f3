package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/cvdex/internal/domain"
	"github.com/kailas-cloud/cvdex/internal/domain/search/intent"
)

// MaxQueryLength is the maximum allowed search query length. Longer than the
// embedding truncation limit so truncation, not rejection, handles oversized
// but valid queries.
const MaxQueryLength = 8192

// Request is a validated search request: the free-text query plus any
// explicit structured filters supplied alongside it.
type Request struct {
	query         string
	skills        []string
	location      string
	education     string
	minExperience *int
	maxExperience *int
	sort          *intent.Sort
}

// Filters holds the explicit structured filter values of a search request.
// Zero values mean "not supplied".
type Filters struct {
	Skills        []string
	Location      string
	Education     string
	MinExperience *int
	MaxExperience *int
	Sort          *intent.Sort
}

// New validates and creates a Request. Blank queries are rejected with
// domain.ErrEmptyQuery before any upstream call is made; explicit skills are
// lowercased and trimmed so they compare like extracted ones.
func New(query string, f Filters) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, domain.ErrEmptyQuery
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if f.MinExperience != nil && *f.MinExperience < 0 {
		return Request{}, fmt.Errorf("%w: min experience must be non-negative", domain.ErrInvalidRequest)
	}
	if f.MaxExperience != nil && *f.MaxExperience < 0 {
		return Request{}, fmt.Errorf("%w: max experience must be non-negative", domain.ErrInvalidRequest)
	}
	if f.MinExperience != nil && f.MaxExperience != nil && *f.MaxExperience < *f.MinExperience {
		return Request{}, fmt.Errorf("%w: max experience below min experience", domain.ErrInvalidRequest)
	}

	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		if t := strings.ToLower(strings.TrimSpace(s)); t != "" {
			skills = append(skills, t)
		}
	}

	return Request{
		query:         query,
		skills:        skills,
		location:      strings.TrimSpace(f.Location),
		education:     strings.TrimSpace(f.Education),
		minExperience: f.MinExperience,
		maxExperience: f.MaxExperience,
		sort:          f.Sort,
	}, nil
}

// ParseSort parses wire-level sort parameters into a Sort. An empty field
// means default relevance order and returns nil.
func ParseSort(field, direction string) (*intent.Sort, error) {
	if strings.TrimSpace(field) == "" {
		return nil, nil
	}
	s, err := intent.NewSort(intent.SortField(field), intent.Direction(direction))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return &s, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Skills returns the explicit skill filters, lowercased.
func (r *Request) Skills() []string { return r.skills }

// Location returns the explicit location filter ("" when absent).
func (r *Request) Location() string { return r.location }

// Education returns the explicit education filter ("" when absent).
func (r *Request) Education() string { return r.education }

// MinExperience returns the explicit lower experience bound (nil when absent).
func (r *Request) MinExperience() *int { return r.minExperience }

// MaxExperience returns the explicit upper experience bound (nil when absent).
func (r *Request) MaxExperience() *int { return r.maxExperience }

// Sort returns the requested sort (nil for default relevance order).
func (r *Request) Sort() *intent.Sort { return r.sort }
