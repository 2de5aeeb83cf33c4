package utils

import (
	"strings"
)

// Base units: grams for mass, milliliters for volume, pieces for counts.
var unitFactors = map[string]struct {
	base   string
	factor float64
}{
	"g":      {"g", 1},
	"gr":     {"g", 1},
	"gram":   {"g", 1},
	"grams":  {"g", 1},
	"kg":     {"g", 1000},
	"mg":     {"g", 0.001},
	"ml":     {"ml", 1},
	"cl":     {"ml", 10},
	"dl":     {"ml", 100},
	"l":      {"ml", 1000},
	"lt":     {"ml", 1000},
	"liter":  {"ml", 1000},
	"pz":     {"pc", 1},
	"pc":     {"pc", 1},
	"pcs":    {"pc", 1},
	"piece":  {"pc", 1},
	"pieces": {"pc", 1},
	"unit":   {"pc", 1},
}

// NormalizeUnit converts a quantity to its base unit. The boolean reports
// whether the unit is known.
func NormalizeUnit(quantity float64, unit string) (float64, string, bool) {
	u, ok := unitFactors[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return quantity, unit, false
	}
	return quantity * u.factor, u.base, true
}

// ComparableQuantities normalizes both quantities and reports whether they can
// be compared at all. Two unknown but identical unit strings still compare.
func ComparableQuantities(haveQty float64, haveUnit string, needQty float64, needUnit string) (float64, float64, bool) {
	h, hBase, hOK := NormalizeUnit(haveQty, haveUnit)
	n, nBase, nOK := NormalizeUnit(needQty, needUnit)
	if hOK && nOK {
		return h, n, hBase == nBase
	}
	if !hOK && !nOK {
		same := strings.EqualFold(strings.TrimSpace(haveUnit), strings.TrimSpace(needUnit))
		return haveQty, needQty, same
	}
	return haveQty, needQty, false
}
