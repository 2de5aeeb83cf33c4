package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	IngredientRequest struct {
		FoodRef  string  `json:"food_ref" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	SaveRecipeRequest struct {
		Name        string              `json:"name" validate:"required"`
		Calories    float64             `json:"calories" validate:"gte=0"`
		ProteinsG   float64             `json:"proteins_g" validate:"gte=0"`
		CarbsG      float64             `json:"carbs_g" validate:"gte=0"`
		FatsG       float64             `json:"fats_g" validate:"gte=0"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"dive"`
	}

	IngredientResponse struct {
		FoodRef  string  `json:"food_ref"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	RecipeResponse struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Calories    float64              `json:"calories"`
		ProteinsG   float64              `json:"proteins_g"`
		CarbsG      float64              `json:"carbs_g"`
		FatsG       float64              `json:"fats_g"`
		Ingredients []IngredientResponse `json:"ingredients"`
		CreatedAt   time.Time            `json:"created_at"`
	}
)
