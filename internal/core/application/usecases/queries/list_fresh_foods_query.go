package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrListFreshFoodsQueryIsNotConstructed = errors.New(
	"ListFreshFoodsQuery must be created via NewListFreshFoodsQuery constructor",
)

// ListFreshFoodsQuery lists available foods made within food.FreshnessWindow.
type ListFreshFoodsQuery struct {
	guard guard.ConstructorGuard
}

func NewListFreshFoodsQuery() ListFreshFoodsQuery {
	return ListFreshFoodsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListFreshFoodsQuery) Validate() error {
	return q.guard.Validate(ErrListFreshFoodsQueryIsNotConstructed)
}
