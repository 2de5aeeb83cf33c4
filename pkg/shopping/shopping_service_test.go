package shopping

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeShoppingRepository struct {
	mu         sync.Mutex
	lists      map[string]*entities.ShoppingList
	items      map[string]*entities.ShoppingListItem
	failDelete bool
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{
		lists: make(map[string]*entities.ShoppingList),
		items: make(map[string]*entities.ShoppingListItem),
	}
}

func (f *fakeShoppingRepository) CreateList(_ context.Context, list *entities.ShoppingList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *list
	f.lists[list.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) GetListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *list
	return &copied, nil
}

func (f *fakeShoppingRepository) GetLists(_ context.Context, houseID string) ([]*entities.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var lists []*entities.ShoppingList
	for _, list := range f.lists {
		if list.HouseID.String() == houseID {
			copied := *list
			lists = append(lists, &copied)
		}
	}
	return lists, nil
}

func (f *fakeShoppingRepository) UpdateListStatus(_ context.Context, id string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if list, ok := f.lists[id]; ok {
		list.Status = status
	}
	return nil
}

// TryAcquireLock mirrors the production conditional update: the whole
// check-and-set happens under one mutex hold, so concurrent callers observe
// the same winner-takes-all behavior as the SQL statement.
func (f *fakeShoppingRepository) TryAcquireLock(_ context.Context, listID string, sessionID string, now time.Time, expiresAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, ok := f.lists[listID]
	if !ok {
		return false, nil
	}

	free := list.LockSessionID == nil ||
		!list.LockExpiresAt.After(now) ||
		*list.LockSessionID == sessionID
	if !free {
		return false, nil
	}

	list.LockSessionID = &sessionID
	list.LockAcquiredAt = &now
	list.LockExpiresAt = &expiresAt
	return true, nil
}

func (f *fakeShoppingRepository) ReleaseLock(_ context.Context, listID string, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, ok := f.lists[listID]
	if !ok || list.LockSessionID == nil || *list.LockSessionID != sessionID {
		return nil
	}

	list.LockSessionID = nil
	list.LockAcquiredAt = nil
	list.LockExpiresAt = nil
	return nil
}

func (f *fakeShoppingRepository) AddItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) GetItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeShoppingRepository) GetItems(_ context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entities.ShoppingListItem
	for _, item := range f.items {
		if item.ListID.String() == listID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (f *fakeShoppingRepository) UpdateItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakeShoppingRepository) DeleteItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errors.New("delete rejected")
	}
	delete(f.items, id)
	return nil
}

type fakeHouseRepository struct {
	houses  map[string]bool
	members map[string]bool
}

func (f *fakeHouseRepository) HouseExists(_ context.Context, houseID string) (bool, error) {
	return f.houses[houseID], nil
}

func (f *fakeHouseRepository) IsMember(_ context.Context, houseID string, userID string) (bool, error) {
	return f.members[houseID+"/"+userID], nil
}

func (f *fakeHouseRepository) GetHouseForUser(_ context.Context, _ string) (*entities.House, error) {
	return nil, gorm.ErrRecordNotFound
}

type shoppingFixture struct {
	repo    *fakeShoppingRepository
	service *shoppingService
	houseID string
	listID  string
	clock   *time.Time
}

func newShoppingFixture(t *testing.T) *shoppingFixture {
	t.Helper()

	houseID := uuid.New()
	listID := uuid.New()

	repo := newFakeShoppingRepository()
	repo.lists[listID.String()] = &entities.ShoppingList{
		ID:      listID,
		HouseID: houseID,
		Name:    "weekly run",
		Status:  entities.ListStatusActive,
	}

	houses := &fakeHouseRepository{
		houses: map[string]bool{houseID.String(): true},
		members: map[string]bool{
			houseID.String() + "/user-1": true,
			houseID.String() + "/user-2": true,
		},
	}

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := &start

	service := &shoppingService{
		shoppingRepository: repo,
		houseRepository:    houses,
		lockTTL:            5 * time.Minute,
		now:                func() time.Time { return *clock },
	}

	return &shoppingFixture{
		repo:    repo,
		service: service,
		houseID: houseID.String(),
		listID:  listID.String(),
		clock:   clock,
	}
}

func (fx *shoppingFixture) advance(d time.Duration) {
	*fx.clock = fx.clock.Add(d)
}

func (fx *shoppingFixture) addItem(t *testing.T, session string) string {
	t.Helper()
	res, err := fx.service.AddItem(context.Background(), fx.houseID, fx.listID, domain.AddItemRequest{
		Name:     "latte",
		Quantity: 2,
		Unit:     "l",
	}, session, "user-1")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return res.ID
}

func TestAcquireLockGrantAndConflict(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	res, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if !res.Granted || res.Holder != "session-a" {
		t.Errorf("grant = %+v, want granted by session-a", res)
	}
	wantExpiry := fx.clock.Add(5 * time.Minute)
	if res.ExpiresAt == nil || !res.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expiry = %v, want %v", res.ExpiresAt, wantExpiry)
	}

	_, err = fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-b", "user-2")
	var conflict *domain.LockConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("second acquire: got %v, want LockConflictError", err)
	}
	if conflict.Holder != "session-a" {
		t.Errorf("conflict holder = %s, want session-a", conflict.Holder)
	}
	if !conflict.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("conflict expiry = %v, want %v", conflict.ExpiresAt, wantExpiry)
	}
}

func TestAcquireLockRenewsOwnHold(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	fx.advance(2 * time.Minute)

	res, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1")
	if err != nil {
		t.Fatalf("renewal: %v", err)
	}
	wantExpiry := fx.clock.Add(5 * time.Minute)
	if res.ExpiresAt == nil || !res.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("renewed expiry = %v, want %v", res.ExpiresAt, wantExpiry)
	}
}

func TestAcquireLockTTLBoundary(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	fx.advance(5*time.Minute - time.Second)
	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-b", "user-2"); err == nil {
		t.Fatal("acquire one second before expiry must be denied")
	}

	fx.advance(time.Second)
	res, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-b", "user-2")
	if err != nil {
		t.Fatalf("acquire at expiry instant: %v", err)
	}
	if !res.Granted || res.Holder != "session-b" {
		t.Errorf("grant = %+v, want granted by session-b", res)
	}
}

func TestAcquireLockMutualExclusion(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	const sessions = 16
	granted := make(chan string, sessions)

	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sessionID := "session-" + string(rune('a'+n))
			if res, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, sessionID, "user-1"); err == nil && res.Granted {
				granted <- sessionID
			}
		}(i)
	}
	wg.Wait()
	close(granted)

	winners := 0
	for range granted {
		winners++
	}
	if winners != 1 {
		t.Errorf("granted sessions = %d, want exactly 1", winners)
	}
}

func TestReleaseLockByNonHolderIsNoOp(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	if err := fx.service.ReleaseLock(ctx, fx.houseID, fx.listID, "session-b", "user-2"); err != nil {
		t.Fatalf("release by non-holder must not fail: %v", err)
	}

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-b", "user-2"); err == nil {
		t.Error("lock must still be held by session-a after a foreign release")
	}

	if err := fx.service.ReleaseLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("release by holder: %v", err)
	}

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-b", "user-2"); err != nil {
		t.Errorf("acquire after release: %v", err)
	}
}

func TestMutationsRequireTheLock(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	req := domain.AddItemRequest{Name: "pane", Quantity: 1, Unit: "pz"}

	t.Run("unlocked list", func(t *testing.T) {
		_, err := fx.service.AddItem(ctx, fx.houseID, fx.listID, req, "session-a", "user-1")
		if !errors.Is(err, domain.ErrLockNotHeld) {
			t.Errorf("got %v, want ErrLockNotHeld", err)
		}
	})

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	t.Run("held by another live session", func(t *testing.T) {
		_, err := fx.service.AddItem(ctx, fx.houseID, fx.listID, req, "session-b", "user-2")
		var conflict *domain.LockConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("got %v, want LockConflictError", err)
		}
	})

	t.Run("holder mutates within TTL", func(t *testing.T) {
		if _, err := fx.service.AddItem(ctx, fx.houseID, fx.listID, req, "session-a", "user-1"); err != nil {
			t.Errorf("holder mutation: %v", err)
		}
	})

	fx.advance(6 * time.Minute)

	t.Run("holder after expiry", func(t *testing.T) {
		_, err := fx.service.AddItem(ctx, fx.houseID, fx.listID, req, "session-a", "user-1")
		if !errors.Is(err, domain.ErrLockExpired) {
			t.Errorf("got %v, want ErrLockExpired", err)
		}
	})

	t.Run("non-holder after expiry", func(t *testing.T) {
		_, err := fx.service.AddItem(ctx, fx.houseID, fx.listID, req, "session-b", "user-2")
		if !errors.Is(err, domain.ErrLockNotHeld) {
			t.Errorf("got %v, want ErrLockNotHeld", err)
		}
	})
}

func TestTransitionItemVerifyAndUndo(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	itemID := fx.addItem(t, "session-a")

	res, err := fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpCheck, nil, "session-a", "user-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.State != entities.ItemStateChecked {
		t.Errorf("state = %s, want checked", res.State)
	}

	qty := 1.5
	unit := "l"
	name := "latte intero"
	res, err = fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpVerify, &domain.VerifyItemRequest{
		Quantity:    &qty,
		Unit:        &unit,
		ProductName: &name,
	}, "session-a", "user-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.State != entities.ItemStateVerified {
		t.Errorf("state = %s, want verified", res.State)
	}
	if res.VerifiedQuantity == nil || *res.VerifiedQuantity != qty {
		t.Errorf("verified quantity = %v, want %v", res.VerifiedQuantity, qty)
	}
	if res.Quantity != 2 {
		t.Errorf("requested quantity = %v, must stay 2 after verification", res.Quantity)
	}

	if _, err := fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpVerify, nil, "session-a", "user-1"); !errors.Is(err, domain.ErrInvalidItemTransition) {
		t.Errorf("double verify: got %v, want ErrInvalidItemTransition", err)
	}

	res, err = fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpNotPurchased, nil, "session-a", "user-1")
	if err != nil {
		t.Fatalf("not purchased: %v", err)
	}
	if res.State != entities.ItemStateNotPurchased {
		t.Errorf("state = %s, want not_purchased", res.State)
	}

	res, err = fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpUndo, nil, "session-a", "user-1")
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if res.State != entities.ItemStatePending {
		t.Errorf("state = %s, want pending", res.State)
	}
	if res.VerifiedQuantity != nil || res.VerifiedUnit != nil || res.VerifiedProductName != nil {
		t.Error("undo must clear the verification fields")
	}
}

func TestAdjustItemQuantityKeepsState(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	itemID := fx.addItem(t, "session-a")

	if _, err := fx.service.TransitionItem(ctx, fx.houseID, fx.listID, itemID, OpCheck, nil, "session-a", "user-1"); err != nil {
		t.Fatalf("check: %v", err)
	}

	res, err := fx.service.AdjustItemQuantity(ctx, fx.houseID, fx.listID, itemID, domain.AdjustQuantityRequest{Quantity: 7}, "session-a", "user-1")
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if res.Quantity != 7 {
		t.Errorf("quantity = %v, want 7", res.Quantity)
	}
	if res.State != entities.ItemStateChecked {
		t.Errorf("state = %s, adjusting quantity must not change it", res.State)
	}
}

func TestMoveItem(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	destID := uuid.New()
	fx.repo.lists[destID.String()] = &entities.ShoppingList{
		ID:      destID,
		HouseID: uuid.MustParse(fx.houseID),
		Name:    "market",
		Status:  entities.ListStatusActive,
	}

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	itemID := fx.addItem(t, "session-a")

	t.Run("same list rejected", func(t *testing.T) {
		_, err := fx.service.MoveItem(ctx, fx.houseID, fx.listID, itemID, domain.MoveItemRequest{DestinationListID: fx.listID}, "session-a", "user-1")
		if !errors.Is(err, domain.ErrSameListMove) {
			t.Errorf("got %v, want ErrSameListMove", err)
		}
	})

	t.Run("destination outside the house rejected", func(t *testing.T) {
		foreignID := uuid.New()
		fx.repo.lists[foreignID.String()] = &entities.ShoppingList{
			ID:      foreignID,
			HouseID: uuid.New(),
			Status:  entities.ListStatusActive,
		}
		_, err := fx.service.MoveItem(ctx, fx.houseID, fx.listID, itemID, domain.MoveItemRequest{DestinationListID: foreignID.String()}, "session-a", "user-1")
		if !errors.Is(err, domain.ErrListNotFound) {
			t.Errorf("got %v, want ErrListNotFound", err)
		}
	})

	t.Run("requires the source lock", func(t *testing.T) {
		_, err := fx.service.MoveItem(ctx, fx.houseID, fx.listID, itemID, domain.MoveItemRequest{DestinationListID: destID.String()}, "session-b", "user-2")
		var conflict *domain.LockConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("got %v, want LockConflictError", err)
		}
	})

	t.Run("moves under the source lock", func(t *testing.T) {
		res, err := fx.service.MoveItem(ctx, fx.houseID, fx.listID, itemID, domain.MoveItemRequest{DestinationListID: destID.String()}, "session-a", "user-1")
		if err != nil {
			t.Fatalf("move: %v", err)
		}
		if res.ListID != destID.String() {
			t.Errorf("moved item list = %s, want %s", res.ListID, destID)
		}
		if res.ID == itemID {
			t.Error("moved item must get a new id")
		}
		if res.Name != "latte" || res.Quantity != 2 || res.Unit != "l" {
			t.Errorf("moved item lost its fields: %+v", res)
		}
		if _, err := fx.repo.GetItemByID(ctx, itemID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Error("source item must be deleted after the move")
		}
	})
}

func TestMoveItemPartialFailure(t *testing.T) {
	fx := newShoppingFixture(t)
	ctx := context.Background()

	destID := uuid.New()
	fx.repo.lists[destID.String()] = &entities.ShoppingList{
		ID:      destID,
		HouseID: uuid.MustParse(fx.houseID),
		Status:  entities.ListStatusActive,
	}

	if _, err := fx.service.AcquireLock(ctx, fx.houseID, fx.listID, "session-a", "user-1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	itemID := fx.addItem(t, "session-a")

	fx.repo.failDelete = true

	res, err := fx.service.MoveItem(ctx, fx.houseID, fx.listID, itemID, domain.MoveItemRequest{DestinationListID: destID.String()}, "session-a", "user-1")
	if !errors.Is(err, domain.ErrPartialMoveInconsistency) {
		t.Fatalf("got %v, want ErrPartialMoveInconsistency", err)
	}

	if _, err := fx.repo.GetItemByID(ctx, itemID); err != nil {
		t.Error("source item must survive a failed delete")
	}
	if _, err := fx.repo.GetItemByID(ctx, res.ID); err != nil {
		t.Error("destination copy must exist after a failed delete")
	}
}
