package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPantry      = "pantry retrieved successfully"
	MessageSuccessAddPantryEntry = "pantry entry added successfully"
	MessageSuccessConsumeEntry   = "pantry entry consumed successfully"
	MessageSuccessUnconsumeEntry = "pantry entry restored successfully"

	MessageFailedGetPantry      = "failed to retrieve pantry"
	MessageFailedAddPantryEntry = "failed to add pantry entry"
	MessageFailedConsumeEntry   = "failed to consume pantry entry"
	MessageFailedUnconsumeEntry = "failed to restore pantry entry"

	ErrPantryEntryNotFound  = errors.New("pantry entry not found")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidExpiryDate    = errors.New("invalid expiry date")
	ErrEntryAlreadyConsumed = errors.New("pantry entry already consumed")
	ErrConsumeExceedsStock  = errors.New("consumed quantity exceeds stock")
)

type (
	AddPantryEntryRequest struct {
		FoodRef    string  `json:"food_ref" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
	}

	ConsumeEntryRequest struct {
		// Absent quantity consumes the whole entry.
		Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
	}

	PantryEntryResponse struct {
		ID         string     `json:"id"`
		FoodRef    string     `json:"food_ref"`
		Quantity   float64    `json:"quantity"`
		Unit       string     `json:"unit"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		Consumed   bool       `json:"consumed"`
	}

	PantrySummary struct {
		TotalEntries    int `json:"total_entries"`
		ExpiringEntries int `json:"expiring_entries"`
	}
)
