package eventhandlers

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// OrderStatusChangedHandler tells the customer about every step and the
// admins about deliveries and cancellations.
type OrderStatusChangedHandler struct {
	notifier ports.NotificationService
	logger   *slog.Logger
}

func NewOrderStatusChangedHandler(notifier ports.NotificationService, logger *slog.Logger) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{notifier: notifier, logger: logger.With("component", "order_status_changed_handler")}
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.OrderStatusChanged)
	if !ok {
		return unexpected(events.TypeOrderStatusChanged, event)
	}

	if e.ShouldNotifyUser() {
		if err := h.notifier.SendToUser(ctx, e.UserID, ports.Notification{
			Title:    e.NotificationTitle(),
			Message:  e.NotificationMessage(),
			Type:     ports.NotificationOrderStatus,
			Priority: ports.PriorityHigh,
			Data: map[string]any{
				"orderId":       e.OrderID.String(),
				"status":        e.NewStatus.String(),
				"statusDisplay": e.NewStatusDisplay,
			},
		}); err != nil {
			return err
		}
		h.logger.DebugContext(ctx, "User notified", "user_id", e.UserID.String(), "status", e.NewStatus.String())
	}

	if !e.ShouldNotifyAdmins() {
		return nil
	}
	return h.notifier.SendToAdmins(ctx, ports.Notification{
		Title:    e.NotificationTitle(),
		Message:  e.AdminNotificationMessage(),
		Type:     ports.NotificationOrderStatus,
		Priority: ports.PriorityNormal,
		Data: map[string]any{
			"orderId": e.OrderID.String(),
			"userId":  e.UserID.String(),
			"status":  e.NewStatus.String(),
		},
	})
}
