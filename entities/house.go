package entities

import (
	"github.com/google/uuid"
)

type House struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	Timestamp
}

type HouseMember struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseID uuid.UUID `gorm:"uniqueIndex:idx_house_user" json:"house_id"`
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_house_user" json:"user_id"`

	House *House `gorm:"foreignKey:HouseID"`
	Timestamp
}
