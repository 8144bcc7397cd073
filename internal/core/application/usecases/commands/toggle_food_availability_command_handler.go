package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type ToggleFoodAvailabilityResult struct {
	FoodID    kernel.UUID
	Available bool
	UpdatedAt time.Time
}

// ToggleFoodAvailabilityCommandHandler changes whether a dish can be ordered.
// Only staff may do it; asking for the current state is a DomainError.
type ToggleFoodAvailabilityCommandHandler struct {
	uowFactory FoodUoWFactory
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
}

func NewToggleFoodAvailabilityCommandHandler(
	uowFactory FoodUoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
) ToggleFoodAvailabilityCommandHandler {
	return ToggleFoodAvailabilityCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mode:       mode,
	}
}

// Handle persists the change and raises FoodAvailabilityChanged after the commit.
func (h *ToggleFoodAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleFoodAvailabilityCommand,
) (ToggleFoodAvailabilityResult, error) {
	if err := cmd.Validate(); err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := load(ctx, uow.UserRepository().Get, cmd.ChangedBy(), "user")
	if err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}
	if !actor.CanManageOrders() {
		return ToggleFoodAvailabilityResult{}, errs.NewDomainError("only staff can change food availability")
	}

	foodRepo := uow.FoodRepository()
	dish, err := load(ctx, foodRepo.Get, cmd.FoodID(), "food")
	if err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	if cmd.Available() {
		err = dish.MakeAvailable()
	} else {
		err = dish.MakeUnavailable()
	}
	if err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	if err = foodRepo.Save(ctx, dish); err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ToggleFoodAvailabilityResult{}, err
	}

	h.publisher.Publish(ctx, h.mode, events.NewFoodAvailabilityChanged(dish, actor, cmd.Reason(), time.Now()))

	return ToggleFoodAvailabilityResult{
		FoodID:    dish.ID(),
		Available: dish.IsAvailable(),
		UpdatedAt: dish.UpdatedAt(),
	}, nil
}
