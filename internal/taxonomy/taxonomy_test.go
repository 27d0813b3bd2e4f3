package taxonomy

import "testing"

// Every registered variant must resolve back to its canonical id, otherwise
// the extractor and the post-filter passes disagree about what a skill is.
func TestNormalize_AllVariantsResolve(t *testing.T) {
	for _, id := range CanonicalIDs() {
		for _, v := range Variants(id) {
			if got := Normalize(v); got != id {
				t.Errorf("Normalize(%q) = %q, want %q", v, got, id)
			}
		}
	}
}

func TestNormalize_CanonicalIDsAreFixpoints(t *testing.T) {
	for _, id := range CanonicalIDs() {
		if got := Normalize(id); got != id {
			t.Errorf("Normalize(%q) = %q, want itself", id, got)
		}
	}
}

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	cases := map[string]string{
		"  GoLang  ":   "go",
		"PYTHON":       "python",
		"ReactJS":      "react",
		"React Native": "react",
		"K8S":          "kubernetes",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_SeparatorFolding(t *testing.T) {
	cases := map[string]string{
		"Node.js":      "node.js",
		"node js":      "node.js",
		"nodejs":       "node.js",
		"scikit learn": "scikit-learn",
		"tailwind-css": "tailwind css",
		"spring-boot":  "spring boot",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_UnknownFallsThrough(t *testing.T) {
	if got := Normalize("  Underwater Basket Weaving "); got != "underwater basket weaving" {
		t.Errorf("unknown skill: got %q", got)
	}
	if got := Normalize(""); got != "" {
		t.Errorf("empty input: got %q", got)
	}
}

func TestNormalize_WebDevelopmentVariants(t *testing.T) {
	for _, in := range []string{"web development", "web dev", "website development", "website dev"} {
		if got := Normalize(in); got != "web development" {
			t.Errorf("Normalize(%q) = %q, want web development", in, got)
		}
	}
}

func TestVariants_NeverEmpty(t *testing.T) {
	if vs := Variants("no such skill"); len(vs) != 1 || vs[0] != "no such skill" {
		t.Errorf("unknown id: got %v", vs)
	}
	for _, id := range CanonicalIDs() {
		if len(Variants(id)) == 0 {
			t.Errorf("id %q has no variants", id)
		}
	}
}

// Bare one-letter languages match by exact name only; their surface variants
// are multiword so free-text scanning never fires on stray letters.
func TestVariants_SingleLetterLanguages(t *testing.T) {
	for _, id := range []string{"c", "r"} {
		if !IsCanonical(id) {
			t.Fatalf("%q not canonical", id)
		}
		for _, v := range Variants(id) {
			if len(v) < 2 {
				t.Errorf("id %q has a bare variant %q", id, v)
			}
		}
	}
}

func TestIsCanonical(t *testing.T) {
	if !IsCanonical("go") {
		t.Error("go should be canonical")
	}
	if IsCanonical("golang") {
		t.Error("golang is a variant, not a canonical id")
	}
}
