package pantry

import (
	"FamilyPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddEntry(ctx context.Context, entry *entities.PantryEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.PantryEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.PantryEntry) error
		Snapshot(ctx context.Context, houseID string) ([]*entities.PantryEntry, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddEntry(ctx context.Context, entry *entities.PantryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *pantryRepository) GetEntryByID(ctx context.Context, id string) (*entities.PantryEntry, error) {
	var entry entities.PantryEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *pantryRepository) UpdateEntry(ctx context.Context, entry *entities.PantryEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Snapshot returns the unconsumed stock of a house ordered by expiry date
// (entries without a date last), then by id for a stable order.
func (r *pantryRepository) Snapshot(ctx context.Context, houseID string) ([]*entities.PantryEntry, error) {
	var entries []*entities.PantryEntry
	if err := r.db.WithContext(ctx).
		Where("house_id = ? AND consumed = ?", houseID, false).
		Order("expiry_date asc NULLS LAST, id asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
