package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateOrder(c echo.Context) error {
	userID, err := actor(c)
	if err != nil {
		return err
	}

	var body NewOrder
	if err = c.Bind(&body); err != nil {
		return err
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		foodID, err := kernel.UUIDFromString(item.FoodID)
		if err != nil {
			return err
		}
		items = append(items, commands.CreateOrderItem{
			FoodID:   foodID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(userID, items, body.DeliveryAddress, body.DeliveryNotes)
	if err != nil {
		return err
	}

	result, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedOrder{
		ID:                    result.OrderID.String(),
		Status:                result.Status.String(),
		TotalAmount:           result.TotalAmount,
		TotalFormatted:        result.TotalFormatted,
		ItemCount:             result.ItemCount,
		EstimatedDeliveryTime: result.EstimatedDeliveryTime,
		CreatedAt:             result.CreatedAt,
	})
}

func (s *Server) ListOrders(c echo.Context) error {
	requestedBy, err := actor(c)
	if err != nil {
		return err
	}

	var (
		filter queries.ListOrdersFilter
		rawID  string
	)
	if err = echo.QueryParamsBinder(c).
		String("userId", &rawID).
		String("status", &filter.Status).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return err
	}

	if rawID != "" {
		userID, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return err
		}
		filter.UserID = &userID
	}

	query, err := queries.NewListOrdersQuery(requestedBy, filter)
	if err != nil {
		return err
	}

	result, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	page := OrderPage{
		Orders:  make([]Order, 0, len(result.Orders)),
		Total:   result.Total,
		HasMore: result.HasMore,
	}
	for _, o := range result.Orders {
		page.Orders = append(page.Orders, toOrder(o))
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) GetOrder(c echo.Context) error {
	requestedBy, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, requestedBy)
	if err != nil {
		return err
	}

	result, err := s.h.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(result))
}

func (s *Server) UpdateOrderStatus(c echo.Context) error {
	updatedBy, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, body.Status, updatedBy)
	if err != nil {
		return err
	}

	result, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, StatusChanged{
		OrderID:        result.OrderID.String(),
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      result.NewStatus.String(),
		UpdatedAt:      result.UpdatedAt,
	})
}

func (s *Server) CancelOrder(c echo.Context) error {
	cancelledBy, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var body Cancellation
	if c.Request().ContentLength > 0 {
		if err = c.Bind(&body); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, cancelledBy, body.Reason)
	if err != nil {
		return err
	}

	result, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, StatusChanged{
		OrderID:        result.OrderID.String(),
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      order.Cancelled.String(),
		UpdatedAt:      result.CancelledAt,
	})
}

func (s *Server) MarkOrderAsDelivered(c echo.Context) error {
	deliveredBy, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderAsDeliveredCommand(orderID, deliveredBy)
	if err != nil {
		return err
	}

	result, err := s.h.MarkOrderAsDelivered.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Delivery{
		OrderID:             result.OrderID.String(),
		DeliveredAt:         result.DeliveredAt,
		DeliveryTimeMinutes: result.DeliveryTimeMinutes,
	})
}
