package eventhandlers

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// OrderCreatedHandler alerts the kitchen and confirms the order to the customer.
type OrderCreatedHandler struct {
	notifier ports.NotificationService
	logger   *slog.Logger
}

func NewOrderCreatedHandler(notifier ports.NotificationService, logger *slog.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{notifier: notifier, logger: logger.With("component", "order_created_handler")}
}

func (h *OrderCreatedHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.OrderCreated)
	if !ok {
		return unexpected(events.TypeOrderCreated, event)
	}

	h.logger.InfoContext(ctx, "New order created", "order_id", e.OrderID.String())

	if e.ShouldNotifyAdmins() {
		if err := h.notifier.SendToAdmins(ctx, ports.Notification{
			Title:    e.NotificationTitle(),
			Message:  e.NotificationMessage(),
			Type:     ports.NotificationNewOrder,
			Priority: ports.PriorityHigh,
			Data: map[string]any{
				"orderId":     e.OrderID.String(),
				"userId":      e.UserID.String(),
				"totalAmount": e.TotalAmount.InexactFloat64(),
			},
		}); err != nil {
			return err
		}
	}

	return h.notifier.SendToUser(ctx, e.UserID, ports.Notification{
		Title:    "Pedido Confirmado! ✅",
		Message:  e.NotificationMessage(),
		Type:     ports.NotificationOrderStatus,
		Priority: ports.PriorityNormal,
		Data:     map[string]any{"orderId": e.OrderID.String()},
	})
}
