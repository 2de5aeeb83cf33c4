package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateList    = "shopping list created successfully"
	MessageSuccessGetLists      = "shopping lists retrieved successfully"
	MessageSuccessGetListDetail = "shopping list retrieved successfully"
	MessageSuccessUpdateList    = "shopping list updated successfully"
	MessageSuccessAcquireLock   = "edit lock acquired successfully"
	MessageSuccessReleaseLock   = "edit lock released successfully"
	MessageSuccessAddItem       = "item added successfully"
	MessageSuccessUpdateItem    = "item updated successfully"
	MessageSuccessDeleteItem    = "item deleted successfully"
	MessageSuccessMoveItem      = "item moved successfully"

	MessageFailedCreateList    = "failed to create shopping list"
	MessageFailedGetLists      = "failed to retrieve shopping lists"
	MessageFailedGetListDetail = "failed to retrieve shopping list"
	MessageFailedUpdateList    = "failed to update shopping list"
	MessageFailedAcquireLock   = "failed to acquire edit lock"
	MessageFailedReleaseLock   = "failed to release edit lock"
	MessageFailedAddItem       = "failed to add item"
	MessageFailedUpdateItem    = "failed to update item"
	MessageFailedDeleteItem    = "failed to delete item"
	MessageFailedMoveItem      = "failed to move item"

	ErrListNotFound          = errors.New("shopping list not found")
	ErrItemNotFound          = errors.New("shopping list item not found")
	ErrLockExpired           = errors.New("edit lock expired, re-acquire before mutating")
	ErrLockNotHeld           = errors.New("caller does not hold the edit lock")
	ErrInvalidItemTransition = errors.New("illegal item state transition")
	ErrInvalidListStatus     = errors.New("invalid shopping list status")
	ErrSameListMove          = errors.New("destination list must differ from source list")

	// Move creates on the destination before deleting from the source; when the
	// delete fails the item exists on both lists and someone has to reconcile.
	ErrPartialMoveInconsistency = errors.New("item copied to destination but source delete failed, manual reconciliation required")
)

type (
	CreateShoppingListRequest struct {
		Name    string  `json:"name" validate:"required"`
		StoreID *string `json:"store_id" validate:"omitempty"`
	}

	UpdateListStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=active completed archived"`
	}

	AcquireLockResponse struct {
		Granted   bool       `json:"granted"`
		Holder    string     `json:"holder,omitempty"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	AddItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		GrocyRef   *string `json:"grocy_ref" validate:"omitempty"`
		CategoryID *string `json:"category_id" validate:"omitempty"`
		Urgent     bool    `json:"urgent"`
		Notes      *string `json:"notes" validate:"omitempty"`
	}

	UpdateItemRequest struct {
		Name       string  `json:"name" validate:"omitempty"`
		Unit       string  `json:"unit" validate:"omitempty"`
		GrocyRef   *string `json:"grocy_ref" validate:"omitempty"`
		CategoryID *string `json:"category_id" validate:"omitempty"`
		Urgent     *bool   `json:"urgent" validate:"omitempty"`
		Notes      *string `json:"notes" validate:"omitempty"`
	}

	AdjustQuantityRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	VerifyItemRequest struct {
		Quantity    *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit        *string  `json:"unit" validate:"omitempty"`
		ProductName *string  `json:"product_name" validate:"omitempty"`
	}

	MoveItemRequest struct {
		DestinationListID string `json:"destination_list_id" validate:"required,uuid"`
	}

	ShoppingListResponse struct {
		ID                 string     `json:"id"`
		Name               string     `json:"name"`
		Status             string     `json:"status"`
		StoreID            *string    `json:"store_id,omitempty"`
		VerificationStatus string     `json:"verification_status"`
		LockHolder         *string    `json:"lock_holder,omitempty"`
		LockExpiresAt      *time.Time `json:"lock_expires_at,omitempty"`
		CreatedAt          time.Time  `json:"created_at"`
	}

	ShoppingListItemResponse struct {
		ID                  string   `json:"id"`
		ListID              string   `json:"list_id"`
		Name                string   `json:"name"`
		Quantity            float64  `json:"quantity"`
		Unit                string   `json:"unit"`
		GrocyRef            *string  `json:"grocy_ref,omitempty"`
		CategoryID          *string  `json:"category_id,omitempty"`
		State               string   `json:"state"`
		Urgent              bool     `json:"urgent"`
		Notes               *string  `json:"notes,omitempty"`
		VerifiedQuantity    *float64 `json:"verified_quantity,omitempty"`
		VerifiedUnit        *string  `json:"verified_unit,omitempty"`
		VerifiedProductName *string  `json:"verified_product_name,omitempty"`
	}
)
