package search

import (
	"testing"
	"time"

	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
)

func fixture(t *testing.T, id, fullText string, md domcand.Metadata) domcand.Record {
	t.Helper()
	return domcand.Reconstruct(id, fullText, []float32{0.1}, id+".pdf", "",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), md)
}

func TestSkillPassNormalizedArray(t *testing.T) {
	rec := fixture(t, "c1", "backend engineer", domcand.Metadata{
		SkillsNormalized: []string{"go", "docker"},
	})
	if !skillPass(&rec, []string{"go"}, false) {
		t.Fatal("normalized-array membership should pass")
	}
}

func TestSkillPassRawArrayCaseInsensitive(t *testing.T) {
	rec := fixture(t, "c1", "backend engineer", domcand.Metadata{
		Skills: []string{"GoLang"},
	})
	if !skillPass(&rec, []string{"golang"}, false) {
		t.Fatal("raw-array case-insensitive membership should pass")
	}
}

func TestSkillPassVariantInFullText(t *testing.T) {
	// raw skills hold a variant spelling, not the requested id, and there is
	// no normalized field: only the full-text variant check can match
	rec := fixture(t, "c1", "experienced react native developer", domcand.Metadata{
		Skills: []string{"React Native"},
	})
	if !skillPass(&rec, []string{"react"}, false) {
		t.Fatal("variant-in-fulltext should pass")
	}
}

func TestSkillPassNoMatch(t *testing.T) {
	rec := fixture(t, "c1", "accountant with excel experience", domcand.Metadata{
		SkillsNormalized: []string{"excel"},
	})
	if skillPass(&rec, []string{"kubernetes"}, false) {
		t.Fatal("unrelated skill should not pass")
	}
}

func TestSkillPassTextOnlySkipsArrays(t *testing.T) {
	rec := fixture(t, "c1", "accountant", domcand.Metadata{
		SkillsNormalized: []string{"go"},
	})
	if skillPass(&rec, []string{"go"}, true) {
		t.Fatal("text-only mode must ignore the normalized array")
	}

	withText := fixture(t, "c2", "golang services at scale", domcand.Metadata{})
	if !skillPass(&withText, []string{"go"}, true) {
		t.Fatal("text-only mode should match via full text")
	}
}

func TestLocationPassSubstringContainment(t *testing.T) {
	rec := fixture(t, "c1", "qa engineer", domcand.Metadata{
		Location:           "Sialkot, Pakistan",
		LocationNormalized: "sialkot, pakistan",
	})
	if !locationPass(&rec, "Sialkot", "sialkot") {
		t.Fatal("substring containment should match Sialkot against Sialkot, Pakistan")
	}
}

func TestLocationPassExactAndMismatch(t *testing.T) {
	rec := fixture(t, "c1", "qa engineer", domcand.Metadata{
		Location:           "Lahore",
		LocationNormalized: "lahore",
	})
	if !locationPass(&rec, "Lahore", "lahore") {
		t.Fatal("exact normalized match should pass")
	}
	if locationPass(&rec, "Karachi", "karachi") {
		t.Fatal("different city must not pass")
	}
}

func TestEducationPassSubstring(t *testing.T) {
	rec := fixture(t, "c1", "software engineer", domcand.Metadata{
		Education: "MS Computer Science, LUMS",
	})
	if !educationPass(&rec, "computer science", false) {
		t.Fatal("substring in education field should pass")
	}
}

func TestEducationPassPartialWordOverlap(t *testing.T) {
	rec := fixture(t, "c1", "software engineer", domcand.Metadata{
		Education: "BS Computer Science, FAST University",
	})
	// whole phrase is not a substring of either field, but "computer" is
	if !educationPass(&rec, "bachelor of computer science", true) {
		t.Fatal("partial word overlap should pass when allowed")
	}
	if educationPass(&rec, "bachelor of computer science", false) {
		t.Fatal("partial overlap must not pass when disabled")
	}
}

func TestEducationPassShortWordsIgnored(t *testing.T) {
	rec := fixture(t, "c1", "engineer", domcand.Metadata{
		Education: "BS in Mathematics",
	})
	// every word of the phrase is <= 2 chars except "phd", absent everywhere
	if educationPass(&rec, "phd", true) {
		t.Fatal("unmatched degree must not pass")
	}
}
