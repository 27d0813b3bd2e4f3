package intent

import "fmt"

// SortField selects the result ordering dimension.
type SortField string

const (
	// SortRelevance keeps the index's descending similarity order (default).
	SortRelevance SortField = "relevance"
	// SortExperience orders by years of experience.
	SortExperience SortField = "experience"
	// SortUploadDate orders by CV upload timestamp.
	SortUploadDate SortField = "uploadDate"
)

// Direction is the sort direction.
type Direction string

const (
	// Asc sorts ascending.
	Asc Direction = "asc"
	// Desc sorts descending.
	Desc Direction = "desc"
)

// Sort is a validated sort specification.
type Sort struct {
	field     SortField
	direction Direction
}

// NewSort validates and creates a Sort. Empty direction defaults to desc.
func NewSort(field SortField, direction Direction) (Sort, error) {
	switch field {
	case SortRelevance, SortExperience, SortUploadDate:
	default:
		return Sort{}, fmt.Errorf("invalid sort field: %q", field)
	}
	if direction == "" {
		direction = Desc
	}
	switch direction {
	case Asc, Desc:
	default:
		return Sort{}, fmt.Errorf("invalid sort direction: %q", direction)
	}
	return Sort{field: field, direction: direction}, nil
}

// Field returns the sort field.
func (s Sort) Field() SortField { return s.field }

// Direction returns the sort direction.
func (s Sort) Direction() Direction { return s.direction }

// IsDefault reports whether the sort keeps relevance order.
func (s Sort) IsDefault() bool { return s.field == SortRelevance }
