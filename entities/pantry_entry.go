package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseID    uuid.UUID  `gorm:"index" json:"house_id"`
	FoodRef    string     `gorm:"index" json:"food_ref"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Consumed   bool       `json:"consumed"`

	House *House `gorm:"foreignKey:HouseID"`
	Timestamp
}
