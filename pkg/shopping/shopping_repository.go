package shopping

import (
	"FamilyPantry-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetLists(ctx context.Context, houseID string) ([]*entities.ShoppingList, error)
		UpdateListStatus(ctx context.Context, id string, status string) error

		TryAcquireLock(ctx context.Context, listID string, sessionID string, now time.Time, expiresAt time.Time) (bool, error)
		ReleaseLock(ctx context.Context, listID string, sessionID string) error

		AddItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		GetItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteItem(ctx context.Context, id string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetLists(ctx context.Context, houseID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Where("house_id = ?", houseID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingRepository) UpdateListStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.ShoppingList{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// TryAcquireLock is the single point of truth for lock acquisition: one
// conditional UPDATE keyed by list id. It succeeds when the list is unlocked,
// the existing lock has expired, or the caller already holds it (TTL renewal).
// RowsAffected decides the winner, so concurrent acquires resolve to exactly
// one granted session.
func (r *shoppingRepository) TryAcquireLock(ctx context.Context, listID string, sessionID string, now time.Time, expiresAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.ShoppingList{}).
		Where("id = ? AND (lock_session_id IS NULL OR lock_expires_at <= ? OR lock_session_id = ?)",
			listID, now, sessionID).
		Updates(map[string]interface{}{
			"lock_session_id":  sessionID,
			"lock_acquired_at": now,
			"lock_expires_at":  expiresAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ReleaseLock clears the lock only when the caller holds it. Releasing a lock
// you do not hold is a no-op, which keeps duplicate release calls harmless.
func (r *shoppingRepository) ReleaseLock(ctx context.Context, listID string, sessionID string) error {
	return r.db.WithContext(ctx).Model(&entities.ShoppingList{}).
		Where("id = ? AND lock_session_id = ?", listID, sessionID).
		Updates(map[string]interface{}{
			"lock_session_id":  nil,
			"lock_acquired_at": nil,
			"lock_expires_at":  nil,
		}).Error
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}
