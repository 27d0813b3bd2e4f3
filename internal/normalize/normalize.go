// Package normalize converts heterogeneous extracted CV metadata into the
// canonical forms the retrieval pipeline compares against.
//
// The upstream metadata extractor is free-form: skills arrive as a string or
// a list, education as a string, an object, or a list of objects. Each
// function here is pure and total — bad shapes degrade to "absent", never to
// an error — and the same functions run at index-write time and at query
// time so both sides of every comparison agree.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/cvdex/internal/taxonomy"
)

// locations canonicalizes known city spellings. Entries are lowercase;
// unknown locations pass through lowercased and trimmed. Extend as the
// corpus grows.
var locations = map[string]string{
	"karachi":    "karachi",
	"sialkot":    "sialkot",
	"lahore":     "lahore",
	"islamabad":  "islamabad",
	"rawalpindi": "rawalpindi",
}

// educationFields are the object keys concatenated by Education, in order.
var educationFields = []string{
	"degree", "program", "major", "university", "institution", "year", "graduationYear",
}

// SkillList converts a raw skills value (string, []string, or []any of
// strings) into canonical skill ids. Comma- and pipe-delimited strings are
// split, entries trimmed and normalized via the taxonomy, duplicates and
// empties dropped. Returns nil — not an empty slice — when nothing usable
// remains, preserving the "absent means omitted" invariant.
func SkillList(raw any) []string {
	entries := StringList(raw)
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		id := taxonomy.Normalize(e)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// StringList converts a raw value (string, []string, or []any) into trimmed
// non-empty strings, splitting delimited single strings. Returns nil when
// nothing usable remains.
func StringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return listFromString(v)
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

func listFromString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Location canonicalizes a location string: lowercase, trim, gazetteer
// lookup, identity fallback. Idempotent.
func Location(loc string) string {
	l := strings.ToLower(strings.TrimSpace(loc))
	if canonical, ok := locations[l]; ok {
		return canonical
	}
	return l
}

// KnownCities returns the gazetteer city names in sorted order.
func KnownCities() []string {
	cities := make([]string, 0, len(locations))
	for c := range locations {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

// Education flattens a raw education value (string, object, or list of
// either) into one display string. Object fields are joined with ", " in
// educationFields order; multiple items are joined with " | ". Returns ""
// when nothing substantive results. Idempotent on its own output.
func Education(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		return educationFromObject(v)
	case []any:
		return educationFromList(v)
	default:
		return ""
	}
}

func educationFromObject(obj map[string]any) string {
	parts := make([]string, 0, len(educationFields))
	for _, key := range educationFields {
		val, ok := obj[key]
		if !ok {
			continue
		}
		if s := scalarToString(val); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func educationFromList(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch v := item.(type) {
		case string:
			s = strings.TrimSpace(v)
		case map[string]any:
			s = educationFromObject(v)
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

func scalarToString(val any) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON numbers decode as float64; years are integral.
		return fmt.Sprintf("%.0f", v)
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return ""
	}
}
