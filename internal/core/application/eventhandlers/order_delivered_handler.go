package eventhandlers

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// OrderDeliveredHandler reports delivery time to the admins.
type OrderDeliveredHandler struct {
	notifier ports.NotificationService
}

func NewOrderDeliveredHandler(notifier ports.NotificationService) *OrderDeliveredHandler {
	return &OrderDeliveredHandler{notifier: notifier}
}

func (h *OrderDeliveredHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.OrderDelivered)
	if !ok {
		return unexpected(events.TypeOrderDelivered, event)
	}

	if e.ShouldNotifyUser() {
		if err := h.notifier.SendToUser(ctx, e.UserID, ports.Notification{
			Title:    e.NotificationTitle(),
			Message:  e.NotificationMessage(),
			Type:     ports.NotificationOrderStatus,
			Priority: ports.PriorityNormal,
			Data:     map[string]any{"orderId": e.OrderID.String()},
		}); err != nil {
			return err
		}
	}

	if !e.ShouldNotifyAdmins() {
		return nil
	}
	priority := ports.PriorityNormal
	if !e.WasDeliveredOnTime() {
		priority = ports.PriorityHigh
	}
	return h.notifier.SendToAdmins(ctx, ports.Notification{
		Title:    e.NotificationTitle(),
		Message:  e.AdminNotificationMessage(),
		Type:     ports.NotificationOrderStatus,
		Priority: priority,
		Data: map[string]any{
			"orderId":             e.OrderID.String(),
			"deliveryTimeMinutes": e.DeliveryTimeMinutes(),
			"onTime":              e.WasDeliveredOnTime(),
		},
	})
}
