package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type CancelOrderResult struct {
	OrderID        kernel.UUID
	PreviousStatus order.Status
	CancelledAt    time.Time
}

// CancelOrderCommandHandler cancels orders. Staff may cancel any order that
// is not delivered yet. The owner may cancel until the order leaves the
// kitchen; once it is out for delivery only staff can stop it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mode:       mode,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle persists the cancellation and raises OrderStatusChanged after the commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()
	o, err := load(ctx, orderRepo.Get, cmd.OrderID(), "order")
	if err != nil {
		return CancelOrderResult{}, err
	}
	actor, err := load(ctx, userRepo.Get, cmd.CancelledBy(), "user")
	if err != nil {
		return CancelOrderResult{}, err
	}
	owner, err := load(ctx, userRepo.Get, o.UserID(), "order owner")
	if err != nil {
		return CancelOrderResult{}, err
	}

	isStaff := actor.CanManageOrders()
	if !isStaff && !o.BelongsTo(actor.ID()) {
		return CancelOrderResult{}, errs.NewDomainErrorf("user %s is not allowed to cancel order %s", actor.ID(), o.ID())
	}
	if !isStaff && (o.IsOutForDelivery() || o.IsDelivered()) {
		return CancelOrderResult{}, errs.NewDomainError("order is already out for delivery and can no longer be cancelled")
	}

	previous := o.Status()
	if err = o.Cancel(); err != nil {
		return CancelOrderResult{}, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "Order cancelled",
		"order_id", o.ID().String(),
		"cancelled_by", actor.ID().String(),
		"previous_status", previous.String(),
		"reason", cmd.Reason(),
	)
	h.publisher.Publish(ctx, h.mode, events.NewOrderStatusChanged(o, owner, actor, previous, time.Now()))

	return CancelOrderResult{
		OrderID:        o.ID(),
		PreviousStatus: previous,
		CancelledAt:    o.UpdatedAt(),
	}, nil
}
