package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type MarkOrderAsDeliveredResult struct {
	OrderID             kernel.UUID
	DeliveredAt         time.Time
	DeliveryTimeMinutes int
}

// MarkOrderAsDeliveredCommandHandler lets the customer or a staff member
// confirm delivery.
type MarkOrderAsDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
}

func NewMarkOrderAsDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
) MarkOrderAsDeliveredCommandHandler {
	return MarkOrderAsDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mode:       mode,
	}
}

// Handle persists the delivery and raises OrderDelivered after the commit.
func (h *MarkOrderAsDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderAsDeliveredCommand,
) (MarkOrderAsDeliveredResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()
	o, err := load(ctx, orderRepo.Get, cmd.OrderID(), "order")
	if err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}
	owner, err := load(ctx, userRepo.Get, o.UserID(), "order owner")
	if err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}
	confirmer, err := load(ctx, userRepo.Get, cmd.DeliveredBy(), "user")
	if err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	if !o.BelongsTo(confirmer.ID()) && !confirmer.CanManageOrders() {
		return MarkOrderAsDeliveredResult{}, errs.NewDomainErrorf(
			"user %s is not allowed to confirm delivery of order %s", confirmer.ID(), o.ID())
	}

	if err = o.MarkAsDelivered(); err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkOrderAsDeliveredResult{}, err
	}

	event := events.NewOrderDelivered(o, owner, confirmer.ID())
	h.publisher.Publish(ctx, h.mode, event)

	return MarkOrderAsDeliveredResult{
		OrderID:             o.ID(),
		DeliveredAt:         event.DeliveredAt,
		DeliveryTimeMinutes: event.DeliveryTimeMinutes(),
	}, nil
}
