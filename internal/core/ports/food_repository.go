package ports

import (
	"context"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
)

type FoodRepository interface {
	// Save inserts the food or replaces the stored version.
	Save(ctx context.Context, aggregate *food.Food) error

	// Get returns errs.ObjectNotFoundError when no food has the id.
	Get(ctx context.Context, id kernel.UUID) (*food.Food, error)

	// FindAvailable returns the foods currently on the menu.
	FindAvailable(ctx context.Context) ([]*food.Food, error)

	FindAll(ctx context.Context) ([]*food.Food, error)
}
