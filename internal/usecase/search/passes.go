package search

import (
	"strings"

	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/taxonomy"
)

// skillPass reports whether a candidate matches any of the requested skills.
// Checks run in priority order: normalized-skill membership, case-insensitive
// raw-skill membership, skill id as substring of the full text, then any
// registered variant as substring. In textOnly mode (fallback relaxation) the
// array checks are dropped and only the full-text checks run.
func skillPass(rec *domcand.Record, skills []string, textOnly bool) bool {
	md := rec.Metadata()
	fullText := strings.ToLower(rec.FullText())

	for _, skill := range skills {
		if !textOnly {
			if containsString(md.SkillsNormalized, skill) {
				return true
			}
			if containsFold(md.Skills, skill) {
				return true
			}
		}
		if strings.Contains(fullText, skill) {
			return true
		}
		for _, v := range taxonomy.Variants(skill) {
			if strings.Contains(fullText, v) {
				return true
			}
		}
	}
	return false
}

// locationPass reports whether a candidate matches the requested location.
// Exact normalized equality first, then case-insensitive raw equality, then
// substring containment both ways. The substring rule deliberately lets
// "sialkot" match "sialkot, pakistan".
func locationPass(rec *domcand.Record, location, locationNorm string) bool {
	md := rec.Metadata()
	rawLower := strings.ToLower(md.Location)
	queryLower := strings.ToLower(location)

	if md.LocationNormalized != "" && md.LocationNormalized == locationNorm {
		return true
	}
	if rawLower != "" && rawLower == queryLower {
		return true
	}
	if md.LocationNormalized != "" && strings.Contains(md.LocationNormalized, locationNorm) {
		return true
	}
	if rawLower != "" && strings.Contains(rawLower, queryLower) {
		return true
	}
	return false
}

// educationPass reports whether a candidate matches the requested education
// phrase: substring in the education field, substring in the full text, or,
// when allowPartial is set, any phrase word longer than two characters found
// in either. The partial branch tolerates free-text degree descriptions and
// is disabled under fallback relaxation.
func educationPass(rec *domcand.Record, education string, allowPartial bool) bool {
	phrase := strings.ToLower(education)
	eduField := strings.ToLower(rec.Metadata().Education)
	fullText := strings.ToLower(rec.FullText())

	if eduField != "" && strings.Contains(eduField, phrase) {
		return true
	}
	if strings.Contains(fullText, phrase) {
		return true
	}
	if !allowPartial {
		return false
	}

	for _, word := range strings.Fields(phrase) {
		if len(word) <= 2 {
			continue
		}
		if (eduField != "" && strings.Contains(eduField, word)) || strings.Contains(fullText, word) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
