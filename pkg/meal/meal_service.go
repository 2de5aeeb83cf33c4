package meal

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"FamilyPantry-Backend/pkg/house"
	"FamilyPantry-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		ConfirmSelections(ctx context.Context, houseID string, req domain.ConfirmSelectionsRequest, userID string) (domain.ConfirmSelectionsResponse, error)
		GetMeals(ctx context.Context, houseID string, page, limit int, userID string) ([]domain.MealResponse, int64, error)
	}

	mealService struct {
		mealRepository   MealRepository
		recipeRepository recipe.RecipeRepository
		houseRepository  house.HouseRepository
	}
)

func NewMealService(mealRepository MealRepository, recipeRepository recipe.RecipeRepository, houseRepository house.HouseRepository) MealService {
	return &mealService{
		mealRepository:   mealRepository,
		recipeRepository: recipeRepository,
		houseRepository:  houseRepository,
	}
}

// ConfirmSelections turns ephemeral suggestions into durable meal records,
// one per (selection, user) pair. The whole batch is validated first and
// written in one transaction; the first invalid selection aborts everything.
// Confirming the same list twice intentionally creates a second set of
// records: callers must not retry blindly.
func (s *mealService) ConfirmSelections(ctx context.Context, houseID string, req domain.ConfirmSelectionsRequest, userID string) (domain.ConfirmSelectionsResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ConfirmSelectionsResponse{}, err
	}

	if len(req.Selections) == 0 {
		return domain.ConfirmSelectionsResponse{}, domain.ErrEmptySelectionList
	}

	houseUUID, err := uuid.Parse(houseID)
	if err != nil {
		return domain.ConfirmSelectionsResponse{}, domain.ErrParseUUID
	}

	var meals []*entities.Meal
	for i, sel := range req.Selections {
		built, err := s.buildSelectionMeals(ctx, houseUUID, i, sel)
		if err != nil {
			return domain.ConfirmSelectionsResponse{}, err
		}
		meals = append(meals, built...)
	}

	if err := s.mealRepository.CreateMealsBatch(ctx, meals); err != nil {
		return domain.ConfirmSelectionsResponse{}, err
	}

	response := domain.ConfirmSelectionsResponse{
		CreatedCount: len(meals),
		Meals:        make([]domain.MealResponse, 0, len(meals)),
	}
	for _, m := range meals {
		response.Meals = append(response.Meals, toMealResponse(m))
	}
	return response, nil
}

func (s *mealService) buildSelectionMeals(ctx context.Context, houseUUID uuid.UUID, index int, sel domain.MealSelection) ([]*entities.Meal, error) {
	date, err := time.Parse("2006-01-02", sel.Date)
	if err != nil {
		return nil, &domain.ValidationError{Index: index, Field: "date", Msg: "invalid date"}
	}

	consumedAt := date // start of day
	if sel.ConsumedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *sel.ConsumedAt)
		if err != nil {
			return nil, &domain.ValidationError{Index: index, Field: "consumed_at", Msg: "invalid timestamp"}
		}
		consumedAt = parsed
	}

	if len(sel.UserIDs) == 0 {
		return nil, &domain.ValidationError{Index: index, Field: "user_ids", Msg: "user set is empty"}
	}

	// Nutrition is copied from the catalog now so later recipe edits never
	// rewrite meal history. A nil recipe id is a free-form meal.
	var recipeUUID *uuid.UUID
	var calories, proteins, carbs, fats float64
	if sel.RecipeID != nil {
		rec, err := s.recipeRepository.GetRecipeByID(ctx, *sel.RecipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &domain.ValidationError{Index: index, Field: "recipe_id", Msg: "unknown recipe"}
			}
			return nil, err
		}
		if rec.HouseID != houseUUID {
			return nil, &domain.ValidationError{Index: index, Field: "recipe_id", Msg: "recipe belongs to another house"}
		}
		recipeUUID = &rec.ID
		calories, proteins, carbs, fats = rec.Calories, rec.ProteinsG, rec.CarbsG, rec.FatsG
	}

	meals := make([]*entities.Meal, 0, len(sel.UserIDs))
	for _, memberID := range sel.UserIDs {
		memberUUID, err := uuid.Parse(memberID)
		if err != nil {
			return nil, &domain.ValidationError{Index: index, Field: "user_ids", Msg: "invalid user id"}
		}

		isMember, err := s.houseRepository.IsMember(ctx, houseUUID.String(), memberID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, &domain.ValidationError{Index: index, Field: "user_ids", Msg: "user is not a member of the house"}
		}

		meals = append(meals, &entities.Meal{
			ID:         uuid.New(),
			HouseID:    houseUUID,
			UserID:     memberUUID,
			RecipeID:   recipeUUID,
			MealType:   sel.MealType,
			ConsumedAt: consumedAt,
			Calories:   calories,
			ProteinsG:  proteins,
			CarbsG:     carbs,
			FatsG:      fats,
		})
	}
	return meals, nil
}

func (s *mealService) GetMeals(ctx context.Context, houseID string, page, limit int, userID string) ([]domain.MealResponse, int64, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return nil, 0, err
	}

	meals, count, err := s.mealRepository.GetMeals(ctx, houseID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, toMealResponse(m))
	}
	return response, count, nil
}

func (s *mealService) checkMembership(ctx context.Context, houseID string, userID string) error {
	exists, err := s.houseRepository.HouseExists(ctx, houseID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrHouseNotFound
	}

	isMember, err := s.houseRepository.IsMember(ctx, houseID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrNotHouseMember
	}
	return nil
}

func toMealResponse(m *entities.Meal) domain.MealResponse {
	var recipeID *string
	if m.RecipeID != nil {
		id := m.RecipeID.String()
		recipeID = &id
	}

	return domain.MealResponse{
		ID:         m.ID.String(),
		UserID:     m.UserID.String(),
		RecipeID:   recipeID,
		MealType:   m.MealType,
		ConsumedAt: m.ConsumedAt,
		Calories:   m.Calories,
		ProteinsG:  m.ProteinsG,
		CarbsG:     m.CarbsG,
		FatsG:      m.FatsG,
	}
}
