package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrMarkFoodAsReadyCommandIsNotConstructed = errors.New(
	"MarkFoodAsReadyCommand must be created via NewMarkFoodAsReadyCommand constructor",
)

// MarkFoodAsReadyCommand announces a fresh batch of a dish.
type MarkFoodAsReadyCommand struct { //nolint:recvcheck //using for validation
	foodID   kernel.UUID
	markedBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkFoodAsReadyCommand(foodID, markedBy kernel.UUID) (MarkFoodAsReadyCommand, error) {
	if err := errors.Join(
		foodID.Validate(),
		markedBy.Validate(),
	); err != nil {
		return MarkFoodAsReadyCommand{}, err
	}

	return MarkFoodAsReadyCommand{
		foodID:   foodID,
		markedBy: markedBy,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c MarkFoodAsReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkFoodAsReadyCommandIsNotConstructed)
}

func (c MarkFoodAsReadyCommand) FoodID() kernel.UUID   { return c.foodID }
func (c MarkFoodAsReadyCommand) MarkedBy() kernel.UUID { return c.markedBy }
