package queries

import (
	"context"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// GetOrderDetailsQueryHandler returns an order to its owner. Staff get no
// bypass here, unlike ListOrders.
type GetOrderDetailsQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderDetailsQueryHandler(orders ports.OrderRepository) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{orders: orders}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := find(ctx, h.orders.Get, query.OrderID(), "order")
	if err != nil {
		return OrderResponse{}, err
	}

	if !o.BelongsTo(query.RequestedBy()) {
		return OrderResponse{}, errs.NewDomainErrorf(
			"user %s is not allowed to see order %s", query.RequestedBy(), o.ID(),
		)
	}

	return newOrderResponse(o), nil
}
