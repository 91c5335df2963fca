package catalog

import (
	"math"
	"testing"
)

func TestResolveWeight_PositiveWins(t *testing.T) {
	t.Parallel()

	cat := Lookup("Dresser")
	if got := ResolveWeight(72.5, cat); got != 72.5 {
		t.Fatalf("expected explicit weight to win; got %v", got)
	}
}

func TestResolveWeight_FallbackCases(t *testing.T) {
	t.Parallel()

	cat := Lookup("Moving Box")
	for _, w := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ResolveWeight(w, cat); got != cat.DefaultWeight {
			t.Fatalf("ResolveWeight(%v) = %v; want default %v", w, got, cat.DefaultWeight)
		}
	}
}

func TestResolveWeightString(t *testing.T) {
	t.Parallel()

	cat := Lookup("Chair")
	cases := []struct {
		raw  string
		want float64
	}{
		{"12", 12},
		{" 45.5 ", 45.5},
		{"", cat.DefaultWeight},
		{"abc", cat.DefaultWeight},
		{"0", cat.DefaultWeight},
		{"-5", cat.DefaultWeight},
	}
	for _, c := range cases {
		if got := ResolveWeightString(c.raw, cat); got != c.want {
			t.Fatalf("ResolveWeightString(%q) = %v; want %v", c.raw, got, c.want)
		}
	}
}

func TestInferCategory_RuleOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  string
	}{
		{"Large Moving Box", "Moving Box"},
		{"Oak Dresser", "Dresser"},
		{"Leather Couch", "Sofa"},
		{"sofa (sectional)", "Sofa"},
		{"Queen Bed Frame", "Bed"},
		{"Kitchen Table", "Table"},
		{"Garage Fridge", "Appliance"},
		{"Refrigerator", "Appliance"},
		{"Office Chair", "Chair"},
		{"Lamp", "Miscellaneous"},
		// Substring containment is the documented contract: "box" matches
		// anywhere in the label, so "Xbox" classifies as a box.
		{"Xbox", "Moving Box"},
		// "box" is checked before furniture terms.
		{"Bookshelf Box", "Moving Box"},
	}
	for _, c := range cases {
		if got := InferCategory(c.label); got != c.want {
			t.Fatalf("InferCategory(%q) = %q; want %q", c.label, got, c.want)
		}
	}
}

func TestLookup_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	got := Lookup("No Such Category")
	if got.Label != "Miscellaneous" {
		t.Fatalf("unknown label resolved to %q; want Miscellaneous", got.Label)
	}
	if got.DefaultWeight <= 0 {
		t.Fatalf("fallback default weight must be positive; got %v", got.DefaultWeight)
	}
}

func TestCatalog_AllDefaultsPositive(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		if c.DefaultWeight <= 0 {
			t.Fatalf("category %q has non-positive default weight %v", c.Label, c.DefaultWeight)
		}
	}
}
