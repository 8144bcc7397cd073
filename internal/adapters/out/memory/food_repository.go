package memory

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

type FoodRepository struct {
	uow *UnitOfWork
}

func (r *FoodRepository) Save(_ context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneFood(aggregate)
	if err != nil {
		return err
	}

	r.uow.write(func(c *changeSet) { c.foods[stored.ID().String()] = stored })
	return nil
}

func (r *FoodRepository) Get(_ context.Context, id kernel.UUID) (*food.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	f, ok := lookup(r.uow.store.foods, r.uow.staged().foods, id.String())
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("food", id.String())
	}

	return cloneFood(f)
}

func (r *FoodRepository) FindAvailable(ctx context.Context) ([]*food.Food, error) {
	return r.find(ctx, (*food.Food).IsAvailable)
}

func (r *FoodRepository) FindAll(ctx context.Context) ([]*food.Food, error) {
	return r.find(ctx, func(*food.Food) bool { return true })
}

func (r *FoodRepository) find(_ context.Context, keep func(*food.Food) bool) ([]*food.Food, error) {
	r.uow.store.mu.RLock()
	rows := merged(r.uow.store.foods, r.uow.staged().foods)
	r.uow.store.mu.RUnlock()

	matching := rows[:0]
	for _, f := range rows {
		if keep(f) {
			matching = append(matching, f)
		}
	}
	byCreation(matching,
		func(f *food.Food) time.Time { return f.CreatedAt() },
		func(f *food.Food) string { return f.ID().String() },
	)

	return cloneAll(matching, cloneFood)
}
