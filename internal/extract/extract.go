// Package extract parses structured search intent out of free-text queries.
//
// Extraction is heuristic by design: an ordered list of pattern rules per
// dimension, first match wins. Rules are data, not control flow, so they can
// be tested and reordered independently. The three dimensions (skills,
// location, education) are extracted independently; any combination,
// including none, is a valid outcome.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kailas-cloud/cvdex/internal/normalize"
	"github.com/kailas-cloud/cvdex/internal/taxonomy"
)

// rule is a single extraction pattern: regexp, capture group to take, and
// length bounds that reject degenerate captures.
type rule struct {
	pattern *regexp.Regexp
	group   int
	minLen  int
	maxLen  int
}

// locationRules capture a trailing place phrase after a locative preposition,
// up to a sentence boundary.
var locationRules = []rule{
	{regexp.MustCompile(`\b(?:based in|located in|in|from|of)\s+([a-z][a-z\s]*?)(?:\?|\.|,|$)`), 1, 3, 40},
}

// educationRules capture a trailing study phrase after a degree-related cue.
var educationRules = []rule{
	{regexp.MustCompile(`\b(?:with|having|degree in|studied|graduated|bachelor|master|phd|diploma|certification)\s+([a-z\s]+?)(?:\?|\.|,|$)`), 1, 3, 50},
	{regexp.MustCompile(`\b(?:from|at)\s+([a-z\s]+?(?:university|college|institute|school))`), 1, 3, 50},
	{regexp.MustCompile(`\b(?:university|college|institute|school)\s+of\s+([a-z\s]+)`), 1, 3, 50},
	{regexp.MustCompile(`\bdegree\s+in\s+([a-z\s]+)`), 1, 3, 50},
}

// degreeTypes are checked as substrings when no education rule fires.
var degreeTypes = []string{
	"bachelor", "master", "phd", "doctorate", "diploma", "certification",
	"bs", "ms", "mba", "bsc", "msc", "ba", "ma",
}

// studyFields are checked as substrings when no degree type is present.
var studyFields = []string{
	"computer science", "information technology", "software engineering",
	"data science", "artificial intelligence", "machine learning",
	"web development", "mobile development", "cybersecurity",
	"business administration", "management", "marketing",
}

// Skills returns the canonical ids of every taxonomy skill whose variant
// occurs as a substring of the query. Multi-word variants are checked as
// whole substrings, not token sets, so "react native" is not split. Results
// are deduplicated and ordered by first occurrence in the query.
func Skills(query string) []string {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	type match struct {
		id  string
		pos int
	}
	var found []match
	for _, id := range taxonomy.CanonicalIDs() {
		pos := -1
		for _, v := range taxonomy.Variants(id) {
			if i := strings.Index(q, v); i >= 0 && (pos < 0 || i < pos) {
				pos = i
			}
		}
		if pos >= 0 {
			found = append(found, match{id: id, pos: pos})
		}
	}

	// CanonicalIDs is sorted, so the stable sort breaks position ties by id.
	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	if len(found) == 0 {
		return nil
	}

	ids := make([]string, len(found))
	for i, m := range found {
		ids[i] = m.id
	}
	return ids
}

// Location returns the likely location mentioned in the query, title-cased
// for display, or "" when none is found. Pattern rules run first, then the
// gazetteer of known city names.
func Location(query string) string {
	q := strings.ToLower(query)

	if loc := applyRules(locationRules, q); loc != "" {
		return titleCase(loc)
	}

	for _, city := range normalize.KnownCities() {
		if strings.Contains(q, city) {
			return titleCase(city)
		}
	}

	return ""
}

// Education returns the likely education keyword or phrase in the query, or
// "" when none is found. Pattern rules run first, then degree-type keywords,
// then field-of-study phrases.
func Education(query string) string {
	q := strings.ToLower(query)

	if edu := applyRules(educationRules, q); edu != "" {
		return titleCase(edu)
	}

	for _, degree := range degreeTypes {
		if strings.Contains(q, degree) {
			return titleCase(degree)
		}
	}

	for _, field := range studyFields {
		if strings.Contains(q, field) {
			return titleCase(field)
		}
	}

	return ""
}

// applyRules runs rules in order and returns the first capture within bounds.
func applyRules(rules []rule, q string) string {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(q)
		if m == nil || r.group >= len(m) {
			continue
		}
		captured := strings.TrimSpace(m[r.group])
		if len(captured) >= r.minLen && len(captured) <= r.maxLen {
			return captured
		}
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
