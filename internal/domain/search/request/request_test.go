package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/cvdex/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewRejectsBlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := New(q, Filters{}); !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("query %q: want ErrEmptyQuery, got %v", q, err)
		}
	}
}

func TestNewRejectsOverlongQuery(t *testing.T) {
	q := strings.Repeat("a", MaxQueryLength+1)
	if _, err := New(q, Filters{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
}

func TestNewValidatesExperienceBounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max *int
		wantErr  bool
	}{
		{"negative min", intPtr(-1), nil, true},
		{"negative max", nil, intPtr(-2), true},
		{"inverted range", intPtr(5), intPtr(3), true},
		{"equal bounds", intPtr(4), intPtr(4), false},
		{"open range", intPtr(2), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("golang developer", Filters{MinExperience: tc.min, MaxExperience: tc.max})
			if tc.wantErr && !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("want ErrInvalidRequest, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewNormalizesExplicitSkills(t *testing.T) {
	req, err := New("backend engineer", Filters{
		Skills:   []string{" Golang ", "REACT", "", "  "},
		Location: "  Lahore ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := req.Skills()
	if len(got) != 2 || got[0] != "golang" || got[1] != "react" {
		t.Fatalf("skills = %v, want [golang react]", got)
	}
	if req.Location() != "Lahore" {
		t.Fatalf("location = %q", req.Location())
	}
}
