package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type UpdateOrderStatusResult struct {
	OrderID        kernel.UUID
	PreviousStatus order.Status
	NewStatus      order.Status
	UpdatedAt      time.Time
}

// UpdateOrderStatusCommandHandler applies one named step of the order
// lifecycle. Staff drive the kitchen steps, the owning customer confirms
// delivery, and cancellation follows the cancel policy of the
// authorization service.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	auth       services.OrderAuthorizationService
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		auth:       services.NewOrderAuthorizationService(),
		publisher:  publisher,
		mode:       mode,
	}
}

// Handle persists the new status and raises OrderStatusChanged after the commit.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	target, err := order.ParseStatus(cmd.Status())
	if err != nil {
		return UpdateOrderStatusResult{}, errs.NewDomainErrorf("invalid status %q", cmd.Status())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()
	o, err := load(ctx, orderRepo.Get, cmd.OrderID(), "order")
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}
	owner, err := load(ctx, userRepo.Get, o.UserID(), "order owner")
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}
	actor, err := load(ctx, userRepo.Get, cmd.UpdatedBy(), "user")
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if target == order.Cancelled {
		if !h.auth.CanCancelOrder(actor, o) {
			return UpdateOrderStatusResult{}, errs.NewDomainErrorf("user %s is not allowed to cancel order %s", actor.ID(), o.ID())
		}
	} else if err = h.auth.ValidateUpdatePermission(actor, o, target); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	previous := o.Status()
	if err = applyTransition(o, target); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	h.publisher.Publish(ctx, h.mode, events.NewOrderStatusChanged(o, owner, actor, previous, time.Now()))

	return UpdateOrderStatusResult{
		OrderID:        o.ID(),
		PreviousStatus: previous,
		NewStatus:      o.Status(),
		UpdatedAt:      o.UpdatedAt(),
	}, nil
}

func applyTransition(o *order.Order, target order.Status) error {
	switch target { //nolint:exhaustive // Pending and Unknown are never a target
	case order.Preparing:
		return o.StartPreparing()
	case order.Ready:
		return o.MarkAsReady()
	case order.OutForDelivery:
		return o.SendForDelivery()
	case order.Delivered:
		return o.MarkAsDelivered()
	case order.Cancelled:
		return o.Cancel()
	default:
		return errs.NewDomainErrorf("invalid status %q", target.String())
	}
}
