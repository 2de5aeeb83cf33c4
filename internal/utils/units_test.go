package utils

import "testing"

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		unit     string
		quantity float64
		wantQty  float64
		wantBase string
		known    bool
	}{
		{"g", 100, 100, "g", true},
		{"kg", 1.5, 1500, "g", true},
		{"mg", 500, 0.5, "g", true},
		{"ml", 200, 200, "ml", true},
		{"cl", 33, 330, "ml", true},
		{"l", 0.75, 750, "ml", true},
		{"pz", 3, 3, "pc", true},
		{"pieces", 2, 2, "pc", true},
		{" KG ", 2, 2000, "g", true},
		{"bunch", 1, 1, "bunch", false},
	}

	for _, tc := range tests {
		t.Run(tc.unit, func(t *testing.T) {
			qty, base, known := NormalizeUnit(tc.quantity, tc.unit)
			if known != tc.known {
				t.Fatalf("known = %v, want %v", known, tc.known)
			}
			if !known {
				return
			}
			if qty != tc.wantQty || base != tc.wantBase {
				t.Errorf("got %v %s, want %v %s", qty, base, tc.wantQty, tc.wantBase)
			}
		})
	}
}

func TestComparableQuantities(t *testing.T) {
	tests := []struct {
		name       string
		haveQty    float64
		haveUnit   string
		needQty    float64
		needUnit   string
		wantHave   float64
		wantNeed   float64
		comparable bool
	}{
		{"same base", 1, "kg", 300, "g", 1000, 300, true},
		{"mass vs volume", 100, "g", 100, "ml", 100, 100, false},
		{"identical unknown units", 2, "bunch", 1, "bunch", 2, 1, true},
		{"different unknown units", 2, "bunch", 1, "sprig", 2, 1, false},
		{"known vs unknown", 100, "g", 1, "bunch", 100, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			have, need, comparable := ComparableQuantities(tc.haveQty, tc.haveUnit, tc.needQty, tc.needUnit)
			if comparable != tc.comparable {
				t.Fatalf("comparable = %v, want %v", comparable, tc.comparable)
			}
			if have != tc.wantHave || need != tc.wantNeed {
				t.Errorf("got %v/%v, want %v/%v", have, need, tc.wantHave, tc.wantNeed)
			}
		})
	}
}
