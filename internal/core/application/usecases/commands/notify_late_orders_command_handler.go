package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// NotifyLateOrdersCommandHandler alerts the admins once per late order. The
// set of reported orders lives in memory and forgets orders that are no
// longer active, so a restart may repeat an alert.
type NotifyLateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationService

	mu       *sync.Mutex
	reported map[string]struct{}
}

func NewNotifyLateOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationService,
) NotifyLateOrdersCommandHandler {
	return NotifyLateOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		mu:         &sync.Mutex{},
		reported:   make(map[string]struct{}),
	}
}

// Handle returns how many alerts were sent. A failed alert is returned as an
// error and retried on the next run.
func (h *NotifyLateOrdersCommandHandler) Handle(ctx context.Context, cmd NotifyLateOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.OrderRepository().FindActive(ctx)
	if err != nil {
		return 0, err
	}

	stillActive := make(map[string]struct{}, len(active))
	var late []*order.Order
	for _, o := range active {
		key := lateKey(o.ID())
		stillActive[key] = struct{}{}
		if _, done := h.reported[key]; done || !o.IsLate(cmd.Now()) {
			continue
		}
		late = append(late, o)
	}

	for key := range h.reported {
		if _, ok := stillActive[key]; !ok {
			delete(h.reported, key)
		}
	}

	userRepo := uow.UserRepository()
	sent := 0
	for _, o := range late {
		customer := "cliente"
		if owner, getErr := userRepo.Get(ctx, o.UserID()); getErr == nil {
			customer = owner.Name()
		}

		eta := o.EstimatedDeliveryTime()
		minutes := int(cmd.Now().Sub(*eta).Minutes())
		if err = h.notifier.SendToAdmins(ctx, ports.Notification{
			Title:    "⏰ Pedido Atrasado",
			Message:  fmt.Sprintf("Pedido #%s de %s está %d min atrasado (%s)", o.ID().Short(), customer, minutes, o.Status().DisplayName()),
			Type:     ports.NotificationOrderStatus,
			Priority: ports.PriorityHigh,
			Data: map[string]any{
				"orderId":               o.ID().String(),
				"status":                o.Status().String(),
				"estimatedDeliveryTime": eta.Format(time.RFC3339),
				"minutesLate":           minutes,
			},
		}); err != nil {
			return sent, err
		}

		h.reported[lateKey(o.ID())] = struct{}{}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return sent, err
	}

	return sent, nil
}

func lateKey(id kernel.UUID) string {
	return id.String()
}
