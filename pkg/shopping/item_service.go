package shopping

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *shoppingService) AddItem(ctx context.Context, houseID string, listID string, req domain.AddItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	list, err := s.requireLock(ctx, houseID, listID, sessionID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item := &entities.ShoppingListItem{
		ID:         uuid.New(),
		ListID:     list.ID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		GrocyRef:   req.GrocyRef,
		CategoryID: req.CategoryID,
		State:      entities.ItemStatePending,
		Urgent:     req.Urgent,
		Notes:      req.Notes,
	}

	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, houseID string, listID string, itemID string, req domain.UpdateItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if _, err := s.requireLock(ctx, houseID, listID, sessionID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item, err := s.getListItem(ctx, listID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.GrocyRef != nil {
		item.GrocyRef = req.GrocyRef
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.Urgent != nil {
		item.Urgent = *req.Urgent
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// AdjustItemQuantity touches the quantity field only; the item state never
// changes through this path.
func (s *shoppingService) AdjustItemQuantity(ctx context.Context, houseID string, listID string, itemID string, req domain.AdjustQuantityRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if _, err := s.requireLock(ctx, houseID, listID, sessionID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item, err := s.getListItem(ctx, listID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item.Quantity = req.Quantity

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, houseID string, listID string, itemID string, sessionID string, userID string) error {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return err
	}

	if _, err := s.requireLock(ctx, houseID, listID, sessionID); err != nil {
		return err
	}

	if _, err := s.getListItem(ctx, listID, itemID); err != nil {
		return err
	}

	return s.shoppingRepository.DeleteItem(ctx, itemID)
}

// TransitionItem runs one state machine operation. Verification additionally
// records the scanned quantity/unit/product name; the requested values stay
// untouched for audit.
func (s *shoppingService) TransitionItem(ctx context.Context, houseID string, listID string, itemID string, op string, verify *domain.VerifyItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if _, err := s.requireLock(ctx, houseID, listID, sessionID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item, err := s.getListItem(ctx, listID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	next, err := applyTransition(op, item.State)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	item.State = next

	if op == OpVerify && verify != nil {
		item.VerifiedQuantity = verify.Quantity
		item.VerifiedUnit = verify.Unit
		item.VerifiedProductName = verify.ProductName
	}
	if op == OpUndo {
		item.VerifiedQuantity = nil
		item.VerifiedUnit = nil
		item.VerifiedProductName = nil
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// MoveItem copies the item to the destination list and then deletes the
// source row. Only the source list lock is required: the destination receives
// a brand-new item, so no cross-list lock coupling. The two steps are not
// atomic; when the delete fails the item exists on both lists and the caller
// gets ErrPartialMoveInconsistency instead of a silent success.
func (s *shoppingService) MoveItem(ctx context.Context, houseID string, listID string, itemID string, req domain.MoveItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if _, err := s.requireLock(ctx, houseID, listID, sessionID); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if req.DestinationListID == listID {
		return domain.ShoppingListItemResponse{}, domain.ErrSameListMove
	}

	destination, err := s.shoppingRepository.GetListByID(ctx, req.DestinationListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListItemResponse{}, domain.ErrListNotFound
		}
		return domain.ShoppingListItemResponse{}, err
	}
	if destination.HouseID.String() != houseID {
		return domain.ShoppingListItemResponse{}, domain.ErrListNotFound
	}

	item, err := s.getListItem(ctx, listID, itemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	moved := &entities.ShoppingListItem{
		ID:                  uuid.New(),
		ListID:              destination.ID,
		Name:                item.Name,
		Quantity:            item.Quantity,
		Unit:                item.Unit,
		GrocyRef:            item.GrocyRef,
		CategoryID:          item.CategoryID,
		State:               item.State,
		Urgent:              item.Urgent,
		Notes:               item.Notes,
		VerifiedQuantity:    item.VerifiedQuantity,
		VerifiedUnit:        item.VerifiedUnit,
		VerifiedProductName: item.VerifiedProductName,
	}

	if err := s.shoppingRepository.AddItem(ctx, moved); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	if err := s.shoppingRepository.DeleteItem(ctx, itemID); err != nil {
		log.Printf("move item %s: copy %s created on list %s but source delete failed: %v",
			itemID, moved.ID, destination.ID, err)
		return toItemResponse(moved), fmt.Errorf("%w: source item %s, destination item %s",
			domain.ErrPartialMoveInconsistency, itemID, moved.ID.String())
	}

	return toItemResponse(moved), nil
}

func (s *shoppingService) getListItem(ctx context.Context, listID string, itemID string) (*entities.ShoppingListItem, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if item.ListID.String() != listID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
