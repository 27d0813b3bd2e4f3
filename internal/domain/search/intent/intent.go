// Package intent models the structured search intent derived from a query:
// extracted terms merged with explicit filters. An Intent is built fresh per
// search, immutable once constructed, and never persisted.
package intent

import (
	"github.com/kailas-cloud/cvdex/internal/normalize"
)

// Intent is the merged, per-search filter intent.
type Intent struct {
	skills             []string
	location           string
	locationNormalized string
	education          string
	minExperience      *int
	maxExperience      *int
	sort               *Sort
}

// New creates an Intent. Skills are deduplicated preserving insertion order;
// locationNormalized is derived from location via the shared canonicalization.
func New(skills []string, location, education string, minExperience, maxExperience *int, sort *Sort) Intent {
	var locNorm string
	if location != "" {
		locNorm = normalize.Location(location)
	}
	return Intent{
		skills:             dedup(skills),
		location:           location,
		locationNormalized: locNorm,
		education:          education,
		minExperience:      minExperience,
		maxExperience:      maxExperience,
		sort:               sort,
	}
}

// Skills returns the canonical skill ids in extraction order.
func (i *Intent) Skills() []string { return i.skills }

// Location returns the display-form location ("" when absent).
func (i *Intent) Location() string { return i.location }

// LocationNormalized returns the canonical comparable location ("" when absent).
func (i *Intent) LocationNormalized() string { return i.locationNormalized }

// Education returns the education keyword or phrase ("" when absent).
func (i *Intent) Education() string { return i.education }

// MinExperience returns the inclusive lower experience bound (nil when absent).
func (i *Intent) MinExperience() *int { return i.minExperience }

// MaxExperience returns the inclusive upper experience bound (nil when absent).
func (i *Intent) MaxExperience() *int { return i.maxExperience }

// Sort returns the requested sort specification (nil for default relevance order).
func (i *Intent) Sort() *Sort { return i.sort }

// HasSkills reports whether any skill terms are active.
func (i *Intent) HasSkills() bool { return len(i.skills) > 0 }

// HasLocation reports whether a location term is active.
func (i *Intent) HasLocation() bool { return i.locationNormalized != "" }

// HasEducation reports whether an education term is active.
func (i *Intent) HasEducation() bool { return i.education != "" }

// IsGeneral reports whether no filter dimension is active.
func (i *Intent) IsGeneral() bool {
	return !i.HasSkills() && !i.HasLocation() && !i.HasEducation()
}

func dedup(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
