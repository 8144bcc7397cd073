package queries

import (
	"context"
	"slices"
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/ports"
)

// ListFreshFoodsQueryHandler returns fresh batches, most recent first.
type ListFreshFoodsQueryHandler struct {
	foods ports.FoodRepository
}

func NewListFreshFoodsQueryHandler(foods ports.FoodRepository) ListFreshFoodsQueryHandler {
	return ListFreshFoodsQueryHandler{foods: foods}
}

func (h ListFreshFoodsQueryHandler) Handle(ctx context.Context, query ListFreshFoodsQuery) ([]FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available, err := h.foods.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fresh := slices.DeleteFunc(available, func(f *food.Food) bool { return !f.IsFresh(now) })
	slices.SortStableFunc(fresh, func(a, b *food.Food) int {
		return b.LastReadyAt().Compare(*a.LastReadyAt())
	})

	resp := make([]FoodResponse, 0, len(fresh))
	for _, f := range fresh {
		resp = append(resp, newFoodResponse(f, now))
	}
	return resp, nil
}
