package queries

import (
	"cmp"
	"context"
	"slices"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type ListOrdersResponse struct {
	Orders  []OrderResponse
	Total   int
	HasMore bool
}

// ListOrdersQueryHandler picks the orders visible to the requester:
//   - a named user: that user's orders, for the user themself or staff
//   - a status: staff only
//   - nothing: everything for staff, their own orders for a customer
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
	users  ports.UserRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository, users ports.UserRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, users: users}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	requester, err := find(ctx, h.users.Get, query.RequestedBy(), "user")
	if err != nil {
		return ListOrdersResponse{}, err
	}
	isStaff := requester.CanManageOrders()

	var rows []*order.Order
	userID, byUser := query.UserID()
	switch {
	case byUser:
		if !isStaff && !userID.IsEqual(requester.ID()) {
			return ListOrdersResponse{}, errs.NewDomainError("only staff can list another user's orders")
		}
		rows, err = h.orders.FindByUserID(ctx, userID)
	case query.Status() != order.Unknown:
		if !isStaff {
			return ListOrdersResponse{}, errs.NewDomainError("only staff can filter orders by status")
		}
		rows, err = h.orders.FindByStatus(ctx, query.Status())
	case isStaff:
		rows, err = h.orders.FindAll(ctx)
	default:
		rows, err = h.orders.FindByUserID(ctx, requester.ID())
	}
	if err != nil {
		return ListOrdersResponse{}, err
	}

	slices.SortStableFunc(rows, func(a, b *order.Order) int {
		return cmp.Compare(b.CreatedAt().UnixNano(), a.CreatedAt().UnixNano())
	})

	window, hasMore := page(rows, query.Limit(), query.Offset())
	resp := ListOrdersResponse{
		Orders:  make([]OrderResponse, 0, len(window)),
		Total:   len(rows),
		HasMore: hasMore,
	}
	for _, o := range window {
		resp.Orders = append(resp.Orders, newOrderResponse(o))
	}
	return resp, nil
}
