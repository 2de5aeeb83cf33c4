package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseID   uuid.UUID `gorm:"index" json:"house_id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	ProteinsG float64   `json:"proteins_g"`
	CarbsG    float64   `json:"carbs_g"`
	FatsG     float64   `json:"fats_g"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	House       *House             `gorm:"foreignKey:HouseID"`
	Timestamp
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	Position int       `json:"position"`
	FoodRef  string    `json:"food_ref"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}
