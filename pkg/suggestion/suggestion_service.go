package suggestion

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/internal/utils"
	"FamilyPantry-Backend/pkg/house"
	"FamilyPantry-Backend/pkg/pantry"
	"FamilyPantry-Backend/pkg/recipe"
	"context"
	"time"
)

const (
	DefaultTopN            = 5
	DefaultExpiryAlertDays = 3
)

type (
	SuggestionService interface {
		GenerateSuggestions(ctx context.Context, houseID string, req domain.GenerateSuggestionsRequest, userID string) (domain.GenerateSuggestionsResponse, error)
	}

	suggestionService struct {
		pantryRepository pantry.PantryRepository
		recipeRepository recipe.RecipeRepository
		houseRepository  house.HouseRepository
		topN             int
		expiryAlertDays  int
		now              func() time.Time
	}
)

func NewSuggestionService(
	pantryRepository pantry.PantryRepository,
	recipeRepository recipe.RecipeRepository,
	houseRepository house.HouseRepository,
) SuggestionService {
	return &suggestionService{
		pantryRepository: pantryRepository,
		recipeRepository: recipeRepository,
		houseRepository:  houseRepository,
		topN:             utils.GetConfigInt("SUGGESTION_TOP_N", DefaultTopN),
		expiryAlertDays:  utils.GetConfigInt("EXPIRY_ALERT_DAYS", DefaultExpiryAlertDays),
		now:              time.Now,
	}
}

// GenerateSuggestions is a pure read: it ranks the house catalog against the
// current pantry snapshot for every requested slot. Nothing is persisted.
func (s *suggestionService) GenerateSuggestions(ctx context.Context, houseID string, req domain.GenerateSuggestionsRequest, userID string) (domain.GenerateSuggestionsResponse, error) {
	exists, err := s.houseRepository.HouseExists(ctx, houseID)
	if err != nil {
		return domain.GenerateSuggestionsResponse{}, err
	}
	if !exists {
		return domain.GenerateSuggestionsResponse{}, domain.ErrHouseNotFound
	}

	isMember, err := s.houseRepository.IsMember(ctx, houseID, userID)
	if err != nil {
		return domain.GenerateSuggestionsResponse{}, err
	}
	if !isMember {
		return domain.GenerateSuggestionsResponse{}, domain.ErrNotHouseMember
	}

	snapshot, err := s.pantryRepository.Snapshot(ctx, houseID)
	if err != nil {
		return domain.GenerateSuggestionsResponse{}, err
	}

	catalog, err := s.recipeRepository.GetRecipesWithIngredients(ctx, houseID)
	if err != nil {
		return domain.GenerateSuggestionsResponse{}, err
	}

	today := s.now()

	candidates := make([]domain.Suggestion, 0, len(catalog))
	for _, candidate := range catalog {
		if scored, ok := scoreRecipe(candidate, snapshot, today, s.expiryAlertDays); ok {
			candidates = append(candidates, scored)
		}
	}
	ranked := rankSuggestions(candidates, s.topN)

	slots := make([]domain.SlotSuggestions, 0, len(req.Plan))
	for _, slot := range req.Plan {
		slots = append(slots, domain.SlotSuggestions{
			Date:     slot.Date,
			MealType: slot.MealType,
			UserIDs:  slot.UserIDs,
			Ranked:   ranked,
		})
	}

	expiring := 0
	alertWindow := today.AddDate(0, 0, s.expiryAlertDays)
	for _, entry := range snapshot {
		if entry.ExpiryDate != nil && !entry.ExpiryDate.After(alertWindow) {
			expiring++
		}
	}

	return domain.GenerateSuggestionsResponse{
		Suggestions: slots,
		PantrySummary: domain.PantrySummary{
			TotalEntries:    len(snapshot),
			ExpiringEntries: expiring,
		},
	}, nil
}
