package suggestion

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
)

var scoringToday = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func makeRecipe(id string, ingredients ...entities.RecipeIngredient) *entities.Recipe {
	recipeID := uuid.MustParse(id)
	for i := range ingredients {
		ingredients[i].RecipeID = recipeID
		ingredients[i].Position = i
	}
	return &entities.Recipe{
		ID:          recipeID,
		Name:        "recipe-" + id[:8],
		Ingredients: ingredients,
	}
}

func makeEntry(foodRef string, qty float64, unit string, expiry *time.Time) *entities.PantryEntry {
	return &entities.PantryEntry{
		ID:         uuid.New(),
		FoodRef:    foodRef,
		Quantity:   qty,
		Unit:       unit,
		ExpiryDate: expiry,
	}
}

func TestScoreRecipeCoverageBounds(t *testing.T) {
	tests := []struct {
		name     string
		pantry   []*entities.PantryEntry
		expected float64
	}{
		{
			name:     "all ingredients absent",
			pantry:   nil,
			expected: 0,
		},
		{
			name: "all ingredients present",
			pantry: []*entities.PantryEntry{
				makeEntry("pasta", 500, "g", nil),
				makeEntry("tomato", 3, "pz", nil),
			},
			expected: 1,
		},
		{
			name: "half covered",
			pantry: []*entities.PantryEntry{
				makeEntry("pasta", 500, "g", nil),
			},
			expected: 0.5,
		},
		{
			name: "present but insufficient quantity",
			pantry: []*entities.PantryEntry{
				makeEntry("pasta", 100, "g", nil),
				makeEntry("tomato", 3, "pz", nil),
			},
			expected: 0.5,
		},
		{
			name: "unit normalized across kg and g",
			pantry: []*entities.PantryEntry{
				makeEntry("pasta", 1, "kg", nil),
				makeEntry("tomato", 3, "pz", nil),
			},
			expected: 1,
		},
	}

	recipe := makeRecipe("11111111-1111-1111-1111-111111111111",
		entities.RecipeIngredient{FoodRef: "pasta", Quantity: 320, Unit: "g"},
		entities.RecipeIngredient{FoodRef: "tomato", Quantity: 2, Unit: "pz"},
	)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scored, ok := scoreRecipe(recipe, tc.pantry, scoringToday, 3)
			if !ok {
				t.Fatal("expected recipe to be scorable")
			}
			if scored.CoverageRatio != tc.expected {
				t.Errorf("coverage = %v, want %v", scored.CoverageRatio, tc.expected)
			}
			if scored.CoverageRatio < 0 || scored.CoverageRatio > 1 {
				t.Errorf("coverage %v out of [0,1]", scored.CoverageRatio)
			}
		})
	}
}

func TestScoreRecipeExcludesEmptyRecipes(t *testing.T) {
	recipe := makeRecipe("22222222-2222-2222-2222-222222222222")

	if _, ok := scoreRecipe(recipe, nil, scoringToday, 3); ok {
		t.Error("recipe with no ingredients must be excluded from ranking")
	}
}

func TestScoreRecipeAvgExpiryDays(t *testing.T) {
	recipe := makeRecipe("33333333-3333-3333-3333-333333333333",
		entities.RecipeIngredient{FoodRef: "milk", Quantity: 200, Unit: "ml"},
		entities.RecipeIngredient{FoodRef: "flour", Quantity: 100, Unit: "g"},
	)

	t.Run("nil when no dated ingredient in pantry", func(t *testing.T) {
		pantry := []*entities.PantryEntry{
			makeEntry("milk", 1, "l", nil),
		}
		scored, _ := scoreRecipe(recipe, pantry, scoringToday, 3)
		if scored.AvgExpiryDays != nil {
			t.Errorf("avg expiry = %v, want nil", *scored.AvgExpiryDays)
		}
		if scored.ExpiryAlert {
			t.Error("expiry alert must be false when avg expiry is nil")
		}
	})

	t.Run("mean over dated ingredients", func(t *testing.T) {
		pantry := []*entities.PantryEntry{
			makeEntry("milk", 1, "l", datePtr(scoringToday.AddDate(0, 0, 2))),
			makeEntry("flour", 1, "kg", datePtr(scoringToday.AddDate(0, 0, 6))),
		}
		scored, _ := scoreRecipe(recipe, pantry, scoringToday, 3)
		if scored.AvgExpiryDays == nil {
			t.Fatal("expected non-nil avg expiry")
		}
		if *scored.AvgExpiryDays != 4 {
			t.Errorf("avg expiry = %v, want 4", *scored.AvgExpiryDays)
		}
	})

	t.Run("alert follows the threshold only", func(t *testing.T) {
		pantry := []*entities.PantryEntry{
			makeEntry("milk", 1, "l", datePtr(scoringToday.AddDate(0, 0, 4))),
			makeEntry("flour", 1, "kg", datePtr(scoringToday.AddDate(0, 0, 4))),
		}

		scored, _ := scoreRecipe(recipe, pantry, scoringToday, 3)
		if scored.ExpiryAlert {
			t.Error("avg of 4 days must not alert with a 3 day threshold")
		}

		relaxed, _ := scoreRecipe(recipe, pantry, scoringToday, 5)
		if !relaxed.ExpiryAlert {
			t.Error("avg of 4 days must alert with a 5 day threshold")
		}
		if relaxed.CoverageRatio != scored.CoverageRatio {
			t.Error("changing the threshold must not change coverage")
		}
		if *relaxed.AvgExpiryDays != *scored.AvgExpiryDays {
			t.Error("changing the threshold must not change avg expiry")
		}
	})
}

func TestRankSuggestionsOrdering(t *testing.T) {
	three := 3.0
	ten := 10.0

	alertLowCoverage := domain.Suggestion{RecipeID: "a", ExpiryAlert: true, CoverageRatio: 0.2, AvgExpiryDays: &three}
	highCoverage := domain.Suggestion{RecipeID: "b", CoverageRatio: 0.9, AvgExpiryDays: &ten}
	lowCoverage := domain.Suggestion{RecipeID: "c", CoverageRatio: 0.4, AvgExpiryDays: &ten}
	noExpiry := domain.Suggestion{RecipeID: "d", CoverageRatio: 0.4}

	ranked := rankSuggestions([]domain.Suggestion{noExpiry, lowCoverage, highCoverage, alertLowCoverage}, 0)

	want := []string{"a", "b", "c", "d"}
	for i, id := range want {
		if ranked[i].RecipeID != id {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].RecipeID, id)
		}
	}
}

func TestRankSuggestionsTieBreakAndTruncation(t *testing.T) {
	a := domain.Suggestion{RecipeID: "aaa", CoverageRatio: 0.5}
	b := domain.Suggestion{RecipeID: "bbb", CoverageRatio: 0.5}
	c := domain.Suggestion{RecipeID: "ccc", CoverageRatio: 0.5}

	ranked := rankSuggestions([]domain.Suggestion{c, a, b}, 2)

	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
	if ranked[0].RecipeID != "aaa" || ranked[1].RecipeID != "bbb" {
		t.Errorf("tie break by recipe id failed: %s, %s", ranked[0].RecipeID, ranked[1].RecipeID)
	}
}

func TestRankSuggestionsDeterministic(t *testing.T) {
	two := 2.0
	input := []domain.Suggestion{
		{RecipeID: "x", CoverageRatio: 0.7},
		{RecipeID: "y", ExpiryAlert: true, CoverageRatio: 0.3, AvgExpiryDays: &two},
		{RecipeID: "z", CoverageRatio: 0.7},
	}

	first := rankSuggestions(input, 0)
	second := rankSuggestions(input, 0)

	for i := range first {
		if first[i].RecipeID != second[i].RecipeID {
			t.Fatalf("ranking not deterministic at position %d", i)
		}
	}
}
