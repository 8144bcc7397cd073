package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrListFoodsQueryIsNotConstructed = errors.New(
	"ListFoodsQuery must be created via NewListFoodsQuery constructor",
)

// ListFoodsQuery pages through the menu sorted by name. A zero limit means
// DefaultFoodsPageSize.
type ListFoodsQuery struct { //nolint:recvcheck //using for validation
	availableOnly bool
	limit         int
	offset        int

	guard guard.ConstructorGuard
}

func NewListFoodsQuery(availableOnly bool, limit, offset int) (ListFoodsQuery, error) {
	if limit == 0 {
		limit = DefaultFoodsPageSize
	}
	if err := checkPaging(limit, offset); err != nil {
		return ListFoodsQuery{}, err
	}

	return ListFoodsQuery{
		availableOnly: availableOnly,
		limit:         limit,
		offset:        offset,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListFoodsQuery) Validate() error {
	return q.guard.Validate(ErrListFoodsQueryIsNotConstructed)
}

func (q ListFoodsQuery) AvailableOnly() bool { return q.availableOnly }
func (q ListFoodsQuery) Limit() int          { return q.limit }
func (q ListFoodsQuery) Offset() int         { return q.offset }
