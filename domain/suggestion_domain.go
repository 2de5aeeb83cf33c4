package domain

var (
	MessageSuccessGetSuggestions = "suggestions generated successfully"
	MessageFailedGetSuggestions  = "failed to generate suggestions"
)

const (
	ReasonExpiryUrgent = "uses pantry stock close to expiry"
	ReasonHighCoverage = "most ingredients already in pantry"
	ReasonFallback     = "suggested from the house catalog"
)

type (
	MealSlotRequest struct {
		Date     string   `json:"date" validate:"required"`
		MealType string   `json:"meal_type" validate:"required,oneof=colazione spuntino pranzo cena"`
		UserIDs  []string `json:"user_ids" validate:"required,min=1,dive,uuid"`
	}

	GenerateSuggestionsRequest struct {
		Plan []MealSlotRequest `json:"plan" validate:"required,min=1,dive"`
	}

	Suggestion struct {
		RecipeID      string   `json:"recipe_id"`
		RecipeName    string   `json:"recipe_name"`
		Reason        string   `json:"reason"`
		AvgExpiryDays *float64 `json:"avg_expiry_days"` // nil when no pantry-present ingredient carries an expiry date
		ExpiryAlert   bool     `json:"expiry_alert"`
		CoverageRatio float64  `json:"coverage_ratio"`
		Calories      float64  `json:"calories"`
		ProteinsG     float64  `json:"proteins_g"`
		CarbsG        float64  `json:"carbs_g"`
		FatsG         float64  `json:"fats_g"`
	}

	SlotSuggestions struct {
		Date     string       `json:"date"`
		MealType string       `json:"meal_type"`
		UserIDs  []string     `json:"user_ids"`
		Ranked   []Suggestion `json:"ranked"`
	}

	GenerateSuggestionsResponse struct {
		Suggestions   []SlotSuggestions `json:"suggestions"`
		PantrySummary PantrySummary     `json:"pantry_summary"`
	}
)
