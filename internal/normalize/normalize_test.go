package normalize

import (
	"reflect"
	"testing"
)

func TestSkillList_Shapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{"delimited string", "Golang, ReactJS | Docker", []string{"go", "react", "docker"}},
		{"string slice", []string{" Python ", "py", "PYTHON"}, []string{"python"}},
		{"any slice", []any{"Node.js", 42, "nodejs"}, []string{"node.js"}},
		{"nil", nil, nil},
		{"empty string", "   ", nil},
		{"unsupported shape", map[string]any{"skill": "go"}, nil},
		{"only separators", ",,||", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SkillList(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SkillList(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSkillList_PreservesFirstSeenOrder(t *testing.T) {
	got := SkillList("docker, go, golang, kubernetes, docker")
	want := []string{"docker", "go", "kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStringList_KeepsRawEntries(t *testing.T) {
	got := StringList("Golang | ReactJS")
	want := []string{"Golang", "ReactJS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocation(t *testing.T) {
	cases := map[string]string{
		"  Lahore ":        "lahore",
		"KARACHI":          "karachi",
		"Lahore, Pakistan": "lahore, pakistan",
		"Berlin":           "berlin",
		"":                 "",
	}
	for in, want := range cases {
		if got := Location(in); got != want {
			t.Errorf("Location(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocation_Idempotent(t *testing.T) {
	for _, in := range []string{"Sialkot", "Lahore, Pakistan", "remote"} {
		once := Location(in)
		if twice := Location(once); twice != once {
			t.Errorf("Location not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestEducation_Shapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want string
	}{
		{"string", "  BS Computer Science  ", "BS Computer Science"},
		{
			"object in field order",
			map[string]any{
				"university": "FAST",
				"degree":     "BS",
				"major":      "Computer Science",
				"year":       float64(2019),
			},
			"BS, Computer Science, FAST, 2019",
		},
		{
			"list of mixed items",
			[]any{
				"MS Data Science",
				map[string]any{"degree": "BS", "institution": "NUST"},
			},
			"MS Data Science | BS, NUST",
		},
		{"nil", nil, ""},
		{"number", float64(2019), ""},
		{"empty object", map[string]any{}, ""},
		{"unknown keys ignored", map[string]any{"gpa": "3.8"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Education(tc.raw); got != tc.want {
				t.Errorf("Education(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEducation_IdempotentOnOwnOutput(t *testing.T) {
	raw := map[string]any{"degree": "BS", "university": "FAST", "year": 2019}
	once := Education(raw)
	if twice := Education(once); twice != once {
		t.Errorf("not idempotent: %q then %q", once, twice)
	}
}

func TestKnownCities_Sorted(t *testing.T) {
	cities := KnownCities()
	if len(cities) == 0 {
		t.Fatal("gazetteer is empty")
	}
	for i := 1; i < len(cities); i++ {
		if cities[i-1] >= cities[i] {
			t.Fatalf("not sorted at %d: %v", i, cities)
		}
	}
}
