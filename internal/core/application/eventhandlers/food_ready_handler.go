package eventhandlers

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// FoodReadyHandler broadcasts a fresh batch to every customer.
type FoodReadyHandler struct {
	notifier ports.NotificationService
	logger   *slog.Logger
}

func NewFoodReadyHandler(notifier ports.NotificationService, logger *slog.Logger) *FoodReadyHandler {
	return &FoodReadyHandler{notifier: notifier, logger: logger.With("component", "food_ready_handler")}
}

func (h *FoodReadyHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(events.FoodReady)
	if !ok {
		return unexpected(events.TypeFoodReady, event)
	}
	if !e.ShouldBroadcastToAll() {
		return nil
	}

	if err := h.notifier.Broadcast(ctx, ports.Notification{
		Title:    e.NotificationTitle(),
		Message:  e.NotificationMessage(),
		Type:     ports.NotificationFreshFood,
		Priority: ports.PriorityHigh,
		Data: map[string]any{
			"foodId":          e.FoodID.String(),
			"foodName":        e.FoodName,
			"price":           e.Price.InexactFloat64(),
			"priceFormatted":  e.PriceFormatted,
			"imageUrl":        e.ImageURL,
			"preparationType": e.PreparationType.String(),
		},
	}); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Fresh food broadcast sent", "food", e.FoodName)
	return nil
}
