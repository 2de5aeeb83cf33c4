package suggestion

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"FamilyPantry-Backend/internal/utils"
	"sort"
	"time"
)

// scoreRecipe computes coverage and expiry figures for one candidate against
// a pantry snapshot. The boolean is false for recipes with no ingredients,
// which have undefined coverage and are excluded from ranking.
func scoreRecipe(recipe *entities.Recipe, pantry []*entities.PantryEntry, today time.Time, alertDays int) (domain.Suggestion, bool) {
	if len(recipe.Ingredients) == 0 {
		return domain.Suggestion{}, false
	}

	covered := 0
	var expirySum float64
	var expiryCount int

	for _, ing := range recipe.Ingredients {
		var available float64
		present := false
		var earliestExpiry *time.Time

		for _, entry := range pantry {
			if entry.FoodRef != ing.FoodRef {
				continue
			}
			present = true

			have, _, comparable := utils.ComparableQuantities(entry.Quantity, entry.Unit, ing.Quantity, ing.Unit)
			if comparable {
				available += have
			}

			if entry.ExpiryDate != nil {
				if earliestExpiry == nil || entry.ExpiryDate.Before(*earliestExpiry) {
					earliestExpiry = entry.ExpiryDate
				}
			}
		}

		_, need, _ := utils.ComparableQuantities(ing.Quantity, ing.Unit, ing.Quantity, ing.Unit)
		if available >= need && available > 0 {
			covered++
		}

		if present && earliestExpiry != nil {
			expirySum += earliestExpiry.Sub(today).Hours() / 24
			expiryCount++
		}
	}

	suggestion := domain.Suggestion{
		RecipeID:      recipe.ID.String(),
		RecipeName:    recipe.Name,
		CoverageRatio: float64(covered) / float64(len(recipe.Ingredients)),
		Calories:      recipe.Calories,
		ProteinsG:     recipe.ProteinsG,
		CarbsG:        recipe.CarbsG,
		FatsG:         recipe.FatsG,
	}

	if expiryCount > 0 {
		avg := expirySum / float64(expiryCount)
		suggestion.AvgExpiryDays = &avg
		suggestion.ExpiryAlert = avg <= float64(alertDays)
	}

	suggestion.Reason = deriveReason(suggestion)
	return suggestion, true
}

func deriveReason(s domain.Suggestion) string {
	switch {
	case s.ExpiryAlert:
		return domain.ReasonExpiryUrgent
	case s.CoverageRatio >= 0.5:
		return domain.ReasonHighCoverage
	default:
		return domain.ReasonFallback
	}
}

// rankSuggestions orders candidates by expiry alert, then coverage, then
// average expiry (nils last), with recipe id as the stable tie break, and
// truncates to topN.
func rankSuggestions(candidates []domain.Suggestion, topN int) []domain.Suggestion {
	ranked := make([]domain.Suggestion, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.ExpiryAlert != b.ExpiryAlert {
			return a.ExpiryAlert
		}
		if a.CoverageRatio != b.CoverageRatio {
			return a.CoverageRatio > b.CoverageRatio
		}
		switch {
		case a.AvgExpiryDays != nil && b.AvgExpiryDays == nil:
			return true
		case a.AvgExpiryDays == nil && b.AvgExpiryDays != nil:
			return false
		case a.AvgExpiryDays != nil && b.AvgExpiryDays != nil && *a.AvgExpiryDays != *b.AvgExpiryDays:
			return *a.AvgExpiryDays < *b.AvgExpiryDays
		}
		return a.RecipeID < b.RecipeID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
