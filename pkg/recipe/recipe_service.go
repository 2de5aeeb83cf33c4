package recipe

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"FamilyPantry-Backend/pkg/house"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, houseID string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, houseID string, page, limit int, userID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, houseID string, recipeID string, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, houseID string, recipeID string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, houseID string, recipeID string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		houseRepository  house.HouseRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, houseRepository house.HouseRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		houseRepository:  houseRepository,
	}
}

func (s *recipeService) checkMembership(ctx context.Context, houseID string, userID string) error {
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

func (s *recipeService) SaveRecipe(ctx context.Context, houseID string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.RecipeResponse{}, err
	}

	houseUUID, err := uuid.Parse(houseID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:        uuid.New(),
		HouseID:   houseUUID,
		Name:      req.Name,
		Calories:  req.Calories,
		ProteinsG: req.ProteinsG,
		CarbsG:    req.CarbsG,
		FatsG:     req.FatsG,
	}
	recipe.Ingredients = buildIngredients(recipe.ID, req.Ingredients)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, houseID string, page, limit int, userID string) ([]domain.RecipeResponse, int64, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return nil, 0, err
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, houseID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, houseID string, recipeID string, userID string) (domain.RecipeResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.getHouseRecipe(ctx, houseID, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, houseID string, recipeID string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.getHouseRecipe(ctx, houseID, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Name = req.Name
	recipe.Calories = req.Calories
	recipe.ProteinsG = req.ProteinsG
	recipe.CarbsG = req.CarbsG
	recipe.FatsG = req.FatsG
	recipe.Ingredients = buildIngredients(recipe.ID, req.Ingredients)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, houseID string, recipeID string, userID string) error {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return err
	}

	if _, err := s.getHouseRecipe(ctx, houseID, recipeID); err != nil {
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) getHouseRecipe(ctx context.Context, houseID string, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.HouseID.String() != houseID {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func buildIngredients(recipeID uuid.UUID, reqs []domain.IngredientRequest) []entities.RecipeIngredient {
	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for i, ing := range reqs {
		ingredients = append(ingredients, entities.RecipeIngredient{
			ID:       uuid.New(),
			RecipeID: recipeID,
			Position: i,
			FoodRef:  ing.FoodRef,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return ingredients
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{
			FoodRef:  ing.FoodRef,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Calories:    recipe.Calories,
		ProteinsG:   recipe.ProteinsG,
		CarbsG:      recipe.CarbsG,
		FatsG:       recipe.FatsG,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt,
	}
}
