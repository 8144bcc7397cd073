package commands

import (
	"context"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// CreateFoodCommandHandler lets staff extend the menu.
type CreateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

func NewCreateFoodCommandHandler(uowFactory FoodUoWFactory) CreateFoodCommandHandler {
	return CreateFoodCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new dish.
func (h *CreateFoodCommandHandler) Handle(ctx context.Context, cmd CreateFoodCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := load(ctx, uow.UserRepository().Get, cmd.CreatedBy(), "user")
	if err != nil {
		return kernel.UUID{}, err
	}
	if !actor.CanManageOrders() {
		return kernel.UUID{}, errs.NewDomainError("only staff can create foods")
	}

	dish, err := food.NewFood(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.PreparationMinutes(),
		cmd.PreparationType(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.FoodRepository().Save(ctx, dish); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return dish.ID(), nil
}
