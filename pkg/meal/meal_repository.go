package meal

import (
	"FamilyPantry-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMealsBatch(ctx context.Context, meals []*entities.Meal) error
		GetMeals(ctx context.Context, houseID string, page, limit int) ([]*entities.Meal, int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// CreateMealsBatch writes the whole batch inside one transaction so readers
// see either all of a confirmation's records or none.
func (r *mealRepository) CreateMealsBatch(ctx context.Context, meals []*entities.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range meals {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealRepository) GetMeals(ctx context.Context, houseID string, page, limit int) ([]*entities.Meal, int64, error) {
	var meals []*entities.Meal
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("house_id = ?", houseID)

	if err := query.Model(&entities.Meal{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("consumed_at desc").Find(&meals).Error; err != nil {
		return nil, 0, err
	}

	return meals, count, nil
}
