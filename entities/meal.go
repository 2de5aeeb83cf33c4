package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MealTypeColazione = "colazione"
	MealTypeSpuntino  = "spuntino"
	MealTypePranzo    = "pranzo"
	MealTypeCena      = "cena"
)

type Meal struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseID    uuid.UUID  `gorm:"index" json:"house_id"`
	UserID     uuid.UUID  `gorm:"index" json:"user_id"`
	RecipeID   *uuid.UUID `json:"recipe_id,omitempty"`
	MealType   string     `json:"meal_type"`
	ConsumedAt time.Time  `gorm:"type:timestamp" json:"consumed_at"`
	Calories   float64    `json:"calories"`
	ProteinsG  float64    `json:"proteins_g"`
	CarbsG     float64    `json:"carbs_g"`
	FatsG      float64    `json:"fats_g"`

	House  *House  `gorm:"foreignKey:HouseID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
