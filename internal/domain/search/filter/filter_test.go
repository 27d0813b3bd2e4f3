package filter

import (
	"strings"
	"testing"
)

func TestNewExpression_GroupLimits(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup+1)
	for i := range conds {
		c, err := NewMatch("skills_normalized", "go")
		if err != nil {
			t.Fatalf("NewMatch: %v", err)
		}
		conds[i] = c
	}

	if _, err := NewExpression(conds, nil, nil); err == nil {
		t.Error("expected error for oversized must group")
	}
	if _, err := NewExpression(nil, conds, nil); err == nil {
		t.Error("expected error for oversized should group")
	}
	if _, err := NewExpression(nil, nil, conds); err == nil {
		t.Error("expected error for oversized must_not group")
	}

	if _, err := NewExpression(conds[:MaxConditionsPerGroup], nil, nil); err != nil {
		t.Errorf("group at the limit should pass: %v", err)
	}
}

func TestExpression_IsEmpty(t *testing.T) {
	var empty Expression
	if !empty.IsEmpty() {
		t.Error("zero expression should be empty")
	}

	c, _ := NewMatch("location_normalized", "lahore")
	expr, err := NewExpression([]Condition{c}, nil, nil)
	if err != nil {
		t.Fatalf("NewExpression: %v", err)
	}
	if expr.IsEmpty() {
		t.Error("expression with a must condition should not be empty")
	}
}

func TestNewMatch_Validation(t *testing.T) {
	if _, err := NewMatch("", "go"); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := NewMatch("skills_normalized", ""); err == nil {
		t.Error("expected error for empty value")
	}

	c, err := NewMatch("skills_normalized", "go")
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if !c.IsMatch() || c.IsOneOf() || c.IsRange() {
		t.Error("condition kind flags wrong for match")
	}
}

func TestNewOneOf_CleansValues(t *testing.T) {
	c, err := NewOneOf("skills_normalized", []string{" go ", "", "golang"})
	if err != nil {
		t.Fatalf("NewOneOf: %v", err)
	}
	got := c.OneOf()
	if len(got) != 2 || got[0] != "go" || got[1] != "golang" {
		t.Errorf("values not cleaned: %v", got)
	}
	if !c.IsOneOf() {
		t.Error("condition kind flags wrong for one-of")
	}

	if _, err := NewOneOf("skills_normalized", []string{"  ", ""}); err == nil {
		t.Error("expected error when all values are blank")
	}
}

func TestNewRangeFilter_Validation(t *testing.T) {
	three, five := 3.0, 5.0

	if _, err := NewRangeFilter(nil, nil, nil, nil); err == nil {
		t.Error("expected error for no boundaries")
	}
	if _, err := NewRangeFilter(&three, &three, nil, nil); err == nil {
		t.Error("expected error for both gt and gte")
	}
	if _, err := NewRangeFilter(nil, nil, &five, &five); err == nil {
		t.Error("expected error for both lt and lte")
	}

	r, err := NewRangeFilter(nil, &three, nil, &five)
	if err != nil {
		t.Fatalf("NewRangeFilter: %v", err)
	}
	if *r.GTE() != 3 || *r.LTE() != 5 {
		t.Errorf("bounds lost: gte=%v lte=%v", r.GTE(), r.LTE())
	}

	cond, err := NewRange("years_experience", r)
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	if !cond.IsRange() || cond.Key() != "years_experience" {
		t.Errorf("range condition malformed: %+v", cond)
	}
}

func TestNewRange_RequiresKey(t *testing.T) {
	three := 3.0
	r, _ := NewRangeFilter(nil, &three, nil, nil)
	_, err := NewRange("", r)
	if err == nil || !strings.Contains(err.Error(), "key") {
		t.Errorf("expected key error, got %v", err)
	}
}
