package queries

import (
	"context"
	"slices"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/ports"
)

type ListFoodsResponse struct {
	Foods   []FoodResponse
	Total   int
	HasMore bool
}

type ListFoodsQueryHandler struct {
	foods ports.FoodRepository
}

func NewListFoodsQueryHandler(foods ports.FoodRepository) ListFoodsQueryHandler {
	return ListFoodsQueryHandler{foods: foods}
}

func (h ListFoodsQueryHandler) Handle(ctx context.Context, query ListFoodsQuery) (ListFoodsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListFoodsResponse{}, err
	}

	var (
		rows []*food.Food
		err  error
	)
	if query.AvailableOnly() {
		rows, err = h.foods.FindAvailable(ctx)
	} else {
		rows, err = h.foods.FindAll(ctx)
	}
	if err != nil {
		return ListFoodsResponse{}, err
	}

	slices.SortStableFunc(rows, func(a, b *food.Food) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	now := time.Now()
	window, hasMore := page(rows, query.Limit(), query.Offset())
	resp := ListFoodsResponse{
		Foods:   make([]FoodResponse, 0, len(window)),
		Total:   len(rows),
		HasMore: hasMore,
	}
	for _, f := range window {
		resp.Foods = append(resp.Foods, newFoodResponse(f, now))
	}
	return resp, nil
}
