package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type MarkFoodAsReadyResult struct {
	FoodID      kernel.UUID
	FoodName    string
	LastReadyAt time.Time
}

// MarkFoodAsReadyCommandHandler records a fresh batch and lets everyone know.
// Only staff may do it.
type MarkFoodAsReadyCommandHandler struct {
	uowFactory FoodUoWFactory
	publisher  ports.EventPublisher
	mode       ports.NotifyMode
}

func NewMarkFoodAsReadyCommandHandler(
	uowFactory FoodUoWFactory,
	publisher ports.EventPublisher,
	mode ports.NotifyMode,
) MarkFoodAsReadyCommandHandler {
	return MarkFoodAsReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mode:       mode,
	}
}

// Handle persists the batch time and raises FoodReady after the commit.
func (h *MarkFoodAsReadyCommandHandler) Handle(ctx context.Context, cmd MarkFoodAsReadyCommand) (MarkFoodAsReadyResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := load(ctx, uow.UserRepository().Get, cmd.MarkedBy(), "user")
	if err != nil {
		return MarkFoodAsReadyResult{}, err
	}
	if !actor.CanManageOrders() {
		return MarkFoodAsReadyResult{}, errs.NewDomainError("only staff can mark food as ready")
	}

	foodRepo := uow.FoodRepository()
	dish, err := load(ctx, foodRepo.Get, cmd.FoodID(), "food")
	if err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	if err = dish.MarkAsFreshlyReady(); err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	if err = foodRepo.Save(ctx, dish); err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkFoodAsReadyResult{}, err
	}

	h.publisher.Publish(ctx, h.mode, events.NewFoodReady(dish, actor, time.Now()))

	return MarkFoodAsReadyResult{
		FoodID:      dish.ID(),
		FoodName:    dish.Name(),
		LastReadyAt: *dish.LastReadyAt(),
	}, nil
}
