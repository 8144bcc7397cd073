package eventhandlers

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// FoodAvailabilityChangedHandler always informs the admins and, when a food
// returns to the menu, every customer.
type FoodAvailabilityChangedHandler struct {
	notifier ports.NotificationService
	logger   *slog.Logger
}

func NewFoodAvailabilityChangedHandler(notifier ports.NotificationService, logger *slog.Logger) *FoodAvailabilityChangedHandler {
	return &FoodAvailabilityChangedHandler{
		notifier: notifier,
		logger:   logger.With("component", "food_availability_changed_handler"),
	}
}

func (h *FoodAvailabilityChangedHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.FoodAvailabilityChanged)
	if !ok {
		return unexpected(events.TypeFoodAvailabilityChanged, event)
	}

	h.logger.InfoContext(ctx, "Food availability changed", "food", e.FoodName, "available", e.Available)

	if e.ShouldNotifyAdmins() {
		if err := h.notifier.SendToAdmins(ctx, ports.Notification{
			Title:    "🔄 Disponibilidade Alterada",
			Message:  e.AdminNotificationMessage(),
			Type:     ports.NotificationFoodAvailability,
			Priority: ports.PriorityNormal,
			Data: map[string]any{
				"foodId":    e.FoodID.String(),
				"available": e.Available,
			},
		}); err != nil {
			return err
		}
	}

	if !e.ShouldBroadcastToAll() {
		return nil
	}
	return h.notifier.Broadcast(ctx, ports.Notification{
		Title:    e.NotificationTitle(),
		Message:  e.NotificationMessage(),
		Type:     ports.NotificationFoodAvailability,
		Priority: ports.PriorityHigh,
		Data: map[string]any{
			"foodId":   e.FoodID.String(),
			"foodName": e.FoodName,
			"price":    e.Price.InexactFloat64(),
		},
	})
}
