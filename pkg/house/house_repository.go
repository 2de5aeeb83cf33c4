package house

import (
	"FamilyPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	HouseRepository interface {
		HouseExists(ctx context.Context, houseID string) (bool, error)
		IsMember(ctx context.Context, houseID string, userID string) (bool, error)
		GetHouseForUser(ctx context.Context, userID string) (*entities.House, error)
	}

	houseRepository struct {
		db *gorm.DB
	}
)

func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) HouseExists(ctx context.Context, houseID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.House{}).
		Where("id = ?", houseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *houseRepository) IsMember(ctx context.Context, houseID string, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.HouseMember{}).
		Where("house_id = ? AND user_id = ?", houseID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *houseRepository) GetHouseForUser(ctx context.Context, userID string) (*entities.House, error) {
	var member entities.HouseMember
	if err := r.db.WithContext(ctx).
		Preload("House").
		Where("user_id = ?", userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return member.House, nil
}
