package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessConfirmSelections = "meal selections confirmed successfully"
	MessageSuccessGetMeals          = "meals retrieved successfully"

	MessageFailedConfirmSelections = "failed to confirm meal selections"
	MessageFailedGetMeals          = "failed to retrieve meals"

	ErrEmptySelectionList = errors.New("selection list is empty")
)

type (
	MealSelection struct {
		Date       string   `json:"date" validate:"required"`
		MealType   string   `json:"meal_type" validate:"required,oneof=colazione spuntino pranzo cena"`
		RecipeID   *string  `json:"recipe_id" validate:"omitempty,uuid"`
		UserIDs    []string `json:"user_ids" validate:"required,min=1,dive,uuid"`
		ConsumedAt *string  `json:"consumed_at" validate:"omitempty"`
	}

	ConfirmSelectionsRequest struct {
		Selections []MealSelection `json:"selections" validate:"required,min=1,dive"`
	}

	MealResponse struct {
		ID         string    `json:"id"`
		UserID     string    `json:"user_id"`
		RecipeID   *string   `json:"recipe_id,omitempty"`
		MealType   string    `json:"meal_type"`
		ConsumedAt time.Time `json:"consumed_at"`
		Calories   float64   `json:"calories"`
		ProteinsG  float64   `json:"proteins_g"`
		CarbsG     float64   `json:"carbs_g"`
		FatsG      float64   `json:"fats_g"`
	}

	ConfirmSelectionsResponse struct {
		CreatedCount int            `json:"created_count"`
		Meals        []MealResponse `json:"meals"`
	}
)
