package foodrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFoodRepository implements ports.FoodRepository using GORM.
type GormFoodRepository struct {
	db *gorm.DB
}

func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

func (r *GormFoodRepository) Save(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

func (r *GormFoodRepository) Get(ctx context.Context, id kernel.UUID) (*food.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormFoodRepository) FindAvailable(ctx context.Context) ([]*food.Food, error) {
	return r.find(ctx, "available = ?", true)
}

func (r *GormFoodRepository) FindAll(ctx context.Context) ([]*food.Food, error) {
	return r.find(ctx)
}

func (r *GormFoodRepository) find(ctx context.Context, conds ...any) ([]*food.Food, error) {
	var dtos []FoodDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos, conds...).Error; err != nil {
		return nil, err
	}

	foods := make([]*food.Food, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, nil
}
