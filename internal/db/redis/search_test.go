package redis

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/kailas-cloud/cvdex/internal/domain/search/filter"
)

func mustMatch(t *testing.T, key, val string) filter.Condition {
	t.Helper()
	c, err := filter.NewMatch(key, val)
	if err != nil {
		t.Fatalf("NewMatch(%s, %s): %v", key, val, err)
	}
	return c
}

func mustOneOf(t *testing.T, key string, vals []string) filter.Condition {
	t.Helper()
	c, err := filter.NewOneOf(key, vals)
	if err != nil {
		t.Fatalf("NewOneOf(%s): %v", key, err)
	}
	return c
}

func mustExpr(t *testing.T, must, should, mustNot []filter.Condition) filter.Expression {
	t.Helper()
	e, err := filter.NewExpression(must, should, mustNot)
	if err != nil {
		t.Fatalf("NewExpression: %v", err)
	}
	return e
}

func TestBuildFilterEmpty(t *testing.T) {
	if got := buildFilter(filter.Expression{}); got != "" {
		t.Fatalf("buildFilter(empty) = %q, want empty", got)
	}
}

func TestBuildFilterMustConditions(t *testing.T) {
	gte := 3.0
	r, err := filter.NewRangeFilter(nil, &gte, nil, nil)
	if err != nil {
		t.Fatalf("NewRangeFilter: %v", err)
	}
	rc, err := filter.NewRange("years_experience", r)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}

	expr := mustExpr(t,
		[]filter.Condition{mustMatch(t, "location_normalized", "lahore"), rc},
		nil, nil,
	)
	want := "@location_normalized:{lahore} @years_experience:[3 +inf]"
	if got := buildFilter(expr); got != want {
		t.Fatalf("buildFilter = %q, want %q", got, want)
	}
}

func TestBuildFilterOneOfAlternation(t *testing.T) {
	expr := mustExpr(t,
		[]filter.Condition{mustOneOf(t, "skills_normalized", []string{"golang", "react"})},
		nil, nil,
	)
	want := "@skills_normalized:{golang|react}"
	if got := buildFilter(expr); got != want {
		t.Fatalf("buildFilter = %q, want %q", got, want)
	}
}

func TestBuildFilterShouldGroup(t *testing.T) {
	expr := mustExpr(t, nil,
		[]filter.Condition{
			mustOneOf(t, "skills_normalized", []string{"golang"}),
			mustOneOf(t, "skills_normalized", []string{"docker", "kubernetes"}),
		},
		nil,
	)
	want := "(@skills_normalized:{golang} | @skills_normalized:{docker|kubernetes})"
	if got := buildFilter(expr); got != want {
		t.Fatalf("buildFilter = %q, want %q", got, want)
	}
}

func TestBuildFilterMustNot(t *testing.T) {
	expr := mustExpr(t, nil, nil,
		[]filter.Condition{mustMatch(t, "location_normalized", "karachi")},
	)
	want := "-@location_normalized:{karachi}"
	if got := buildFilter(expr); got != want {
		t.Fatalf("buildFilter = %q, want %q", got, want)
	}
}

func TestBuildFilterEscapesTagValues(t *testing.T) {
	expr := mustExpr(t,
		[]filter.Condition{mustMatch(t, "skills", "node.js")},
		nil, nil,
	)
	want := `@skills:{node\.js}`
	if got := buildFilter(expr); got != want {
		t.Fatalf("buildFilter = %q, want %q", got, want)
	}
}

func TestVectorToBytesLittleEndian(t *testing.T) {
	got := vectorToBytes([]float32{1.5, -2.0})
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	first := math.Float32frombits(binary.LittleEndian.Uint32([]byte(got)[:4]))
	if first != 1.5 {
		t.Fatalf("first float = %v, want 1.5", first)
	}
}
