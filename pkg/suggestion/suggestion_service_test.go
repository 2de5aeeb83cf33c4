package suggestion

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakePantryRepository struct {
	entries []*entities.PantryEntry
}

func (f *fakePantryRepository) AddEntry(_ context.Context, _ *entities.PantryEntry) error {
	return nil
}

func (f *fakePantryRepository) GetEntryByID(_ context.Context, _ string) (*entities.PantryEntry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePantryRepository) UpdateEntry(_ context.Context, _ *entities.PantryEntry) error {
	return nil
}

func (f *fakePantryRepository) Snapshot(_ context.Context, _ string) ([]*entities.PantryEntry, error) {
	return f.entries, nil
}

type fakeRecipeRepository struct {
	recipes []*entities.Recipe
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, _ *entities.Recipe) error { return nil }

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, _ string, _, _ int) ([]*entities.Recipe, int64, error) {
	return f.recipes, int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepository) GetRecipesWithIngredients(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, _ string) error          { return nil }

func (f *fakeRecipeRepository) IngredientsOf(_ context.Context, recipeID string) ([]entities.RecipeIngredient, error) {
	for _, r := range f.recipes {
		if r.ID.String() == recipeID {
			return r.Ingredients, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeHouseRepository struct {
	houses  map[string]bool
	members map[string]bool
}

func (f *fakeHouseRepository) HouseExists(_ context.Context, houseID string) (bool, error) {
	return f.houses[houseID], nil
}

func (f *fakeHouseRepository) IsMember(_ context.Context, houseID string, userID string) (bool, error) {
	return f.members[houseID+"/"+userID], nil
}

func (f *fakeHouseRepository) GetHouseForUser(_ context.Context, _ string) (*entities.House, error) {
	return nil, gorm.ErrRecordNotFound
}

func newSuggestionService(houseID string, pantry []*entities.PantryEntry, catalog []*entities.Recipe) *suggestionService {
	return &suggestionService{
		pantryRepository: &fakePantryRepository{entries: pantry},
		recipeRepository: &fakeRecipeRepository{recipes: catalog},
		houseRepository: &fakeHouseRepository{
			houses:  map[string]bool{houseID: true},
			members: map[string]bool{houseID + "/user-1": true},
		},
		topN:            DefaultTopN,
		expiryAlertDays: DefaultExpiryAlertDays,
		now:             func() time.Time { return scoringToday },
	}
}

func singleSlotRequest() domain.GenerateSuggestionsRequest {
	return domain.GenerateSuggestionsRequest{
		Plan: []domain.MealSlotRequest{
			{Date: "2024-05-02", MealType: entities.MealTypePranzo, UserIDs: []string{uuid.NewString()}},
		},
	}
}

func TestGenerateSuggestionsHouseGuards(t *testing.T) {
	houseID := uuid.NewString()
	s := newSuggestionService(houseID, nil, nil)

	t.Run("unknown house", func(t *testing.T) {
		_, err := s.GenerateSuggestions(context.Background(), uuid.NewString(), singleSlotRequest(), "user-1")
		if !errors.Is(err, domain.ErrHouseNotFound) {
			t.Errorf("got %v, want ErrHouseNotFound", err)
		}
	})

	t.Run("non member", func(t *testing.T) {
		_, err := s.GenerateSuggestions(context.Background(), houseID, singleSlotRequest(), "stranger")
		if !errors.Is(err, domain.ErrNotHouseMember) {
			t.Errorf("got %v, want ErrNotHouseMember", err)
		}
	})
}

func TestGenerateSuggestionsEmptyCatalog(t *testing.T) {
	houseID := uuid.NewString()
	s := newSuggestionService(houseID, []*entities.PantryEntry{
		makeEntry("pasta", 500, "g", nil),
	}, nil)

	res, err := s.GenerateSuggestions(context.Background(), houseID, singleSlotRequest(), "user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(res.Suggestions) != 1 {
		t.Fatalf("slots = %d, want 1", len(res.Suggestions))
	}
	if len(res.Suggestions[0].Ranked) != 0 {
		t.Errorf("ranked = %d entries, want none for an empty catalog", len(res.Suggestions[0].Ranked))
	}
	if res.PantrySummary.TotalEntries != 1 {
		t.Errorf("total entries = %d, want 1", res.PantrySummary.TotalEntries)
	}
}

func TestGenerateSuggestionsRanksCatalog(t *testing.T) {
	houseID := uuid.NewString()

	urgent := makeRecipe("aaaaaaaa-0000-0000-0000-000000000001",
		entities.RecipeIngredient{FoodRef: "milk", Quantity: 200, Unit: "ml"},
	)
	covered := makeRecipe("aaaaaaaa-0000-0000-0000-000000000002",
		entities.RecipeIngredient{FoodRef: "pasta", Quantity: 100, Unit: "g"},
	)
	uncovered := makeRecipe("aaaaaaaa-0000-0000-0000-000000000003",
		entities.RecipeIngredient{FoodRef: "saffron", Quantity: 1, Unit: "g"},
	)
	empty := makeRecipe("aaaaaaaa-0000-0000-0000-000000000004")

	pantry := []*entities.PantryEntry{
		makeEntry("milk", 1, "l", datePtr(scoringToday.AddDate(0, 0, 1))),
		makeEntry("pasta", 500, "g", datePtr(scoringToday.AddDate(0, 0, 30))),
	}

	s := newSuggestionService(houseID, pantry, []*entities.Recipe{uncovered, covered, empty, urgent})

	req := domain.GenerateSuggestionsRequest{
		Plan: []domain.MealSlotRequest{
			{Date: "2024-05-02", MealType: entities.MealTypePranzo, UserIDs: []string{uuid.NewString()}},
			{Date: "2024-05-02", MealType: entities.MealTypeCena, UserIDs: []string{uuid.NewString()}},
		},
	}

	res, err := s.GenerateSuggestions(context.Background(), houseID, req, "user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(res.Suggestions) != 2 {
		t.Fatalf("slots = %d, want 2", len(res.Suggestions))
	}

	ranked := res.Suggestions[0].Ranked
	if len(ranked) != 3 {
		t.Fatalf("ranked = %d, want 3 (empty recipe excluded)", len(ranked))
	}

	if ranked[0].RecipeID != urgent.ID.String() {
		t.Errorf("first = %s, want the expiry-urgent recipe", ranked[0].RecipeID)
	}
	if ranked[0].Reason != domain.ReasonExpiryUrgent {
		t.Errorf("first reason = %s, want %s", ranked[0].Reason, domain.ReasonExpiryUrgent)
	}
	if ranked[1].RecipeID != covered.ID.String() {
		t.Errorf("second = %s, want the fully covered recipe", ranked[1].RecipeID)
	}
	if ranked[1].Reason != domain.ReasonHighCoverage {
		t.Errorf("second reason = %s, want %s", ranked[1].Reason, domain.ReasonHighCoverage)
	}
	if ranked[2].RecipeID != uncovered.ID.String() {
		t.Errorf("third = %s, want the uncovered recipe", ranked[2].RecipeID)
	}
	if ranked[2].Reason != domain.ReasonFallback {
		t.Errorf("third reason = %s, want %s", ranked[2].Reason, domain.ReasonFallback)
	}

	if !reflect.DeepEqual(res.Suggestions[0].Ranked, res.Suggestions[1].Ranked) {
		t.Error("every slot must carry the same ranked list")
	}

	if res.PantrySummary.TotalEntries != 2 {
		t.Errorf("total entries = %d, want 2", res.PantrySummary.TotalEntries)
	}
	if res.PantrySummary.ExpiringEntries != 1 {
		t.Errorf("expiring entries = %d, want 1 (milk expires tomorrow)", res.PantrySummary.ExpiringEntries)
	}

	again, err := s.GenerateSuggestions(context.Background(), houseID, req, "user-1")
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if !reflect.DeepEqual(res, again) {
		t.Error("repeated calls over unchanged state must return identical output")
	}
}

func TestGenerateSuggestionsHonorsTopN(t *testing.T) {
	houseID := uuid.NewString()

	catalog := make([]*entities.Recipe, 0, 8)
	for i := 0; i < 8; i++ {
		catalog = append(catalog, makeRecipe(uuid.NewString(),
			entities.RecipeIngredient{FoodRef: "pasta", Quantity: 100, Unit: "g"},
		))
	}

	s := newSuggestionService(houseID, nil, catalog)
	s.topN = 3

	res, err := s.GenerateSuggestions(context.Background(), houseID, singleSlotRequest(), "user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := len(res.Suggestions[0].Ranked); got != 3 {
		t.Errorf("ranked = %d, want topN of 3", got)
	}
}
