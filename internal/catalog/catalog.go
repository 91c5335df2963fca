// Package catalog holds the fixed category table and the weight/category
// resolution rules. Everything here is pure lookup; there is no state.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"pcs-pro/internal/model"
)

// Categories is the fixed catalog. The last entry is the fallback for
// unknown labels; Lookup depends on that position.
var Categories = []model.Category{
	{Label: "Moving Box", DefaultWeight: 30},
	{Label: "Sofa", DefaultWeight: 180},
	{Label: "Bed", DefaultWeight: 150},
	{Label: "Dresser", DefaultWeight: 120},
	{Label: "Table", DefaultWeight: 90},
	{Label: "Appliance", DefaultWeight: 200},
	{Label: "Chair", DefaultWeight: 40},
	{Label: "Miscellaneous", DefaultWeight: 25},
}

// inferenceRules maps label keywords to categories. Order is a behavioral
// contract: box keywords run before the furniture terms so "bookshelf box"
// classifies as a box, and the first match wins. Matching is substring
// containment, so "Xbox" lands on Moving Box; callers rely on that staying
// stable until the matching rule itself changes.
var inferenceRules = []struct {
	keyword  string
	category string
}{
	{"box", "Moving Box"},
	{"sofa", "Sofa"},
	{"couch", "Sofa"},
	{"bed", "Bed"},
	{"dresser", "Dresser"},
	{"table", "Table"},
	{"fridge", "Appliance"},
	{"refrigerator", "Appliance"},
	{"appliance", "Appliance"},
	{"chair", "Chair"},
}

// Fallback returns the catalog's final entry ("Miscellaneous").
func Fallback() model.Category {
	return Categories[len(Categories)-1]
}

// Lookup resolves a category label to its definition. Unknown labels
// silently resolve to the fallback entry; that is the designed behavior
// for hand-edited or legacy data, not an error path.
func Lookup(label string) model.Category {
	for _, c := range Categories {
		if c.Label == label {
			return c
		}
	}
	return Fallback()
}

// InferCategory guesses a category from an item label using the ordered
// keyword rules. No match means Miscellaneous.
func InferCategory(label string) string {
	l := strings.ToLower(label)
	for _, r := range inferenceRules {
		if strings.Contains(l, r.keyword) {
			return r.category
		}
	}
	return Fallback().Label
}

// ResolveWeight returns w when it is a finite positive number, otherwise
// the category default. Absence of valid input is a defined fallback,
// never an error.
func ResolveWeight(w float64, cat model.Category) float64 {
	if w > 0 && !math.IsNaN(w) && !math.IsInf(w, 0) {
		return w
	}
	return cat.DefaultWeight
}

// ResolveWeightString parses raw user input and applies ResolveWeight.
// Blank and non-numeric input fall back silently.
func ResolveWeightString(raw string, cat model.Category) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return cat.DefaultWeight
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return cat.DefaultWeight
	}
	return ResolveWeight(w, cat)
}
