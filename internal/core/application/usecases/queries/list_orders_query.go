package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter narrows a listing. UserID wins over Status when both are
// set. A zero Limit means DefaultOrdersPageSize.
type ListOrdersFilter struct {
	UserID *kernel.UUID
	Status string
	Limit  int
	Offset int
}

// ListOrdersQuery lists orders newest first, one page at a time.
//
// Example:
//
//	query, err := NewListOrdersQuery(adminID, ListOrdersFilter{Status: "PREPARING", Limit: 10})
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d orders, more: %v\n", len(page.Orders), page.Total, page.HasMore)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	requestedBy kernel.UUID
	userID      *kernel.UUID
	status      order.Status
	limit       int
	offset      int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(requestedBy kernel.UUID, filter ListOrdersFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		requestedBy: requestedBy,
		limit:       filter.Limit,
		offset:      filter.Offset,
		guard:       guard.NewConstructorGuard(),
	}
	if q.limit == 0 {
		q.limit = DefaultOrdersPageSize
	}

	if err := errors.Join(
		requestedBy.Validate(),
		q.setUserID(filter.UserID),
		q.setStatus(filter.Status),
		checkPaging(q.limit, q.offset),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) RequestedBy() kernel.UUID { return q.requestedBy }

// UserID returns the user whose orders are wanted, if one was named.
func (q ListOrdersQuery) UserID() (kernel.UUID, bool) {
	if q.userID == nil {
		return kernel.UUID{}, false
	}
	return *q.userID, true
}

// Status returns order.Unknown when no status filter was given.
func (q ListOrdersQuery) Status() order.Status { return q.status }
func (q ListOrdersQuery) Limit() int           { return q.limit }
func (q ListOrdersQuery) Offset() int          { return q.offset }

func (q *ListOrdersQuery) setUserID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	userID := *id
	q.userID = &userID
	return nil
}

func (q *ListOrdersQuery) setStatus(s string) error {
	if s == "" {
		return nil
	}
	status, err := order.ParseStatus(s)
	if err != nil {
		return err
	}
	q.status = status
	return nil
}
