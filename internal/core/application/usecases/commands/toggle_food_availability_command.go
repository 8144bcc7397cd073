package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrToggleFoodAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleFoodAvailabilityCommand must be created via NewToggleFoodAvailabilityCommand constructor",
)

// ToggleFoodAvailabilityCommand puts a dish on or takes it off the menu.
// Reason is optional and is shown to the admins.
type ToggleFoodAvailabilityCommand struct { //nolint:recvcheck //using for validation
	foodID    kernel.UUID
	available bool
	changedBy kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

func NewToggleFoodAvailabilityCommand(
	foodID kernel.UUID,
	available bool,
	changedBy kernel.UUID,
	reason string,
) (ToggleFoodAvailabilityCommand, error) {
	if err := errors.Join(
		foodID.Validate(),
		changedBy.Validate(),
	); err != nil {
		return ToggleFoodAvailabilityCommand{}, err
	}

	return ToggleFoodAvailabilityCommand{
		foodID:    foodID,
		available: available,
		changedBy: changedBy,
		reason:    strings.TrimSpace(reason),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleFoodAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleFoodAvailabilityCommandIsNotConstructed)
}

func (c ToggleFoodAvailabilityCommand) FoodID() kernel.UUID    { return c.foodID }
func (c ToggleFoodAvailabilityCommand) Available() bool        { return c.available }
func (c ToggleFoodAvailabilityCommand) ChangedBy() kernel.UUID { return c.changedBy }
func (c ToggleFoodAvailabilityCommand) Reason() string         { return c.reason }
