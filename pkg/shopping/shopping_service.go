package shopping

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"FamilyPantry-Backend/internal/utils"
	"FamilyPantry-Backend/pkg/house"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultLockTTLSeconds = 300

type (
	ShoppingService interface {
		CreateList(ctx context.Context, houseID string, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error)
		GetLists(ctx context.Context, houseID string, userID string) ([]domain.ShoppingListResponse, error)
		GetListDetail(ctx context.Context, houseID string, listID string, userID string) (domain.ShoppingListResponse, []domain.ShoppingListItemResponse, error)
		UpdateListStatus(ctx context.Context, houseID string, listID string, req domain.UpdateListStatusRequest, userID string) error

		AcquireLock(ctx context.Context, houseID string, listID string, sessionID string, userID string) (domain.AcquireLockResponse, error)
		ReleaseLock(ctx context.Context, houseID string, listID string, sessionID string, userID string) error

		AddItem(ctx context.Context, houseID string, listID string, req domain.AddItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error)
		UpdateItem(ctx context.Context, houseID string, listID string, itemID string, req domain.UpdateItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error)
		AdjustItemQuantity(ctx context.Context, houseID string, listID string, itemID string, req domain.AdjustQuantityRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error)
		DeleteItem(ctx context.Context, houseID string, listID string, itemID string, sessionID string, userID string) error
		TransitionItem(ctx context.Context, houseID string, listID string, itemID string, op string, verify *domain.VerifyItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error)
		MoveItem(ctx context.Context, houseID string, listID string, itemID string, req domain.MoveItemRequest, sessionID string, userID string) (domain.ShoppingListItemResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		houseRepository    house.HouseRepository
		lockTTL            time.Duration
		now                func() time.Time
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, houseRepository house.HouseRepository) ShoppingService {
	ttl := time.Duration(utils.GetConfigInt("LOCK_TTL_SECONDS", DefaultLockTTLSeconds)) * time.Second
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		houseRepository:    houseRepository,
		lockTTL:            ttl,
		now:                time.Now,
	}
}

func (s *shoppingService) CreateList(ctx context.Context, houseID string, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	houseUUID, err := uuid.Parse(houseID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:                 uuid.New(),
		HouseID:            houseUUID,
		Name:               req.Name,
		Status:             entities.ListStatusActive,
		StoreID:            req.StoreID,
		VerificationStatus: "none",
	}

	if err := s.shoppingRepository.CreateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingService) GetLists(ctx context.Context, houseID string, userID string) ([]domain.ShoppingListResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return nil, err
	}

	lists, err := s.shoppingRepository.GetLists(ctx, houseID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toListResponse(list))
	}
	return response, nil
}

func (s *shoppingService) GetListDetail(ctx context.Context, houseID string, listID string, userID string) (domain.ShoppingListResponse, []domain.ShoppingListItemResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.ShoppingListResponse{}, nil, err
	}

	list, err := s.getHouseList(ctx, houseID, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, nil, err
	}

	items, err := s.shoppingRepository.GetItems(ctx, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, nil, err
	}

	itemResponses := make([]domain.ShoppingListItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, toItemResponse(item))
	}
	return toListResponse(list), itemResponses, nil
}

func (s *shoppingService) UpdateListStatus(ctx context.Context, houseID string, listID string, req domain.UpdateListStatusRequest, userID string) error {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return err
	}

	if _, err := s.getHouseList(ctx, houseID, listID); err != nil {
		return err
	}

	switch req.Status {
	case entities.ListStatusActive, entities.ListStatusCompleted, entities.ListStatusArchived:
	default:
		return domain.ErrInvalidListStatus
	}

	return s.shoppingRepository.UpdateListStatus(ctx, listID, req.Status)
}

// AcquireLock grants the advisory edit lock through a single conditional
// update keyed by list id. Re-acquiring by the current holder renews the TTL.
func (s *shoppingService) AcquireLock(ctx context.Context, houseID string, listID string, sessionID string, userID string) (domain.AcquireLockResponse, error) {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return domain.AcquireLockResponse{}, err
	}

	if _, err := s.getHouseList(ctx, houseID, listID); err != nil {
		return domain.AcquireLockResponse{}, err
	}

	now := s.now()
	expiresAt := now.Add(s.lockTTL)

	granted, err := s.shoppingRepository.TryAcquireLock(ctx, listID, sessionID, now, expiresAt)
	if err != nil {
		return domain.AcquireLockResponse{}, err
	}

	if !granted {
		list, err := s.shoppingRepository.GetListByID(ctx, listID)
		if err != nil {
			return domain.AcquireLockResponse{}, err
		}
		holder := ""
		var holderExpiry time.Time
		if list.LockSessionID != nil {
			holder = *list.LockSessionID
		}
		if list.LockExpiresAt != nil {
			holderExpiry = *list.LockExpiresAt
		}
		return domain.AcquireLockResponse{}, &domain.LockConflictError{Holder: holder, ExpiresAt: holderExpiry}
	}

	return domain.AcquireLockResponse{
		Granted:   true,
		Holder:    sessionID,
		ExpiresAt: &expiresAt,
	}, nil
}

// ReleaseLock is a no-op when the caller no longer holds the lock, so retried
// release requests never fail.
func (s *shoppingService) ReleaseLock(ctx context.Context, houseID string, listID string, sessionID string, userID string) error {
	if err := s.checkMembership(ctx, houseID, userID); err != nil {
		return err
	}

	if _, err := s.getHouseList(ctx, houseID, listID); err != nil {
		return err
	}

	return s.shoppingRepository.ReleaseLock(ctx, listID, sessionID)
}

// requireLock validates the caller's lock at the instant of a mutation.
// Expiry is lazy: the stored expiry is compared to now on every call, no
// background sweep. A stale holder gets ErrLockExpired and must re-acquire.
func (s *shoppingService) requireLock(ctx context.Context, houseID string, listID string, sessionID string) (*entities.ShoppingList, error) {
	list, err := s.getHouseList(ctx, houseID, listID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if list.LockSessionID == nil || list.LockExpiresAt == nil {
		return nil, domain.ErrLockNotHeld
	}

	if *list.LockSessionID != sessionID {
		if list.LockExpiresAt.After(now) {
			return nil, &domain.LockConflictError{Holder: *list.LockSessionID, ExpiresAt: *list.LockExpiresAt}
		}
		return nil, domain.ErrLockNotHeld
	}

	if !list.LockExpiresAt.After(now) {
		return nil, domain.ErrLockExpired
	}

	return list, nil
}

func (s *shoppingService) checkMembership(ctx context.Context, houseID string, userID string) error {
	exists, err := s.houseRepository.HouseExists(ctx, houseID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrHouseNotFound
	}

	isMember, err := s.houseRepository.IsMember(ctx, houseID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrNotHouseMember
	}
	return nil
}

func (s *shoppingService) getHouseList(ctx context.Context, houseID string, listID string) (*entities.ShoppingList, error) {
	list, err := s.shoppingRepository.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}

	if list.HouseID.String() != houseID {
		return nil, domain.ErrListNotFound
	}
	return list, nil
}

func toListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	return domain.ShoppingListResponse{
		ID:                 list.ID.String(),
		Name:               list.Name,
		Status:             list.Status,
		StoreID:            list.StoreID,
		VerificationStatus: list.VerificationStatus,
		LockHolder:         list.LockSessionID,
		LockExpiresAt:      list.LockExpiresAt,
		CreatedAt:          list.CreatedAt,
	}
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:                  item.ID.String(),
		ListID:              item.ListID.String(),
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
}
