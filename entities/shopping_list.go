package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListStatusActive    = "active"
	ListStatusCompleted = "completed"
	ListStatusArchived  = "archived"
)

const (
	ItemStatePending      = "pending"
	ItemStateChecked      = "checked"
	ItemStateVerified     = "verified"
	ItemStateNotPurchased = "not_purchased"
)

type ShoppingList struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseID            uuid.UUID `gorm:"index" json:"house_id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"` // "active", "completed", "archived"
	StoreID            *string   `json:"store_id,omitempty"`
	VerificationStatus string    `json:"verification_status"`

	// Advisory edit lock. All three null = unlocked.
	LockSessionID  *string    `json:"lock_session_id,omitempty"`
	LockAcquiredAt *time.Time `gorm:"type:timestamp" json:"lock_acquired_at,omitempty"`
	LockExpiresAt  *time.Time `gorm:"type:timestamp" json:"lock_expires_at,omitempty"`

	House *House `gorm:"foreignKey:HouseID"`
	Timestamp
}

type ShoppingListItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID     uuid.UUID `gorm:"index" json:"list_id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	GrocyRef   *string   `json:"grocy_ref,omitempty"`
	CategoryID *string   `json:"category_id,omitempty"`
	State      string    `json:"state"` // "pending", "checked", "verified", "not_purchased"
	Urgent     bool      `json:"urgent"`
	Notes      *string   `json:"notes,omitempty"`

	// Values captured at barcode verification. The requested name/quantity/unit
	// above are kept untouched for audit.
	VerifiedQuantity    *float64 `json:"verified_quantity,omitempty"`
	VerifiedUnit        *string  `json:"verified_unit,omitempty"`
	VerifiedProductName *string  `json:"verified_product_name,omitempty"`

	List *ShoppingList `gorm:"foreignKey:ListID"`
	Timestamp
}
