package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to the status named by its wire
// name, e.g. "PREPARING". The name is resolved by the handler so an unknown
// one is reported as a business error.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	status    string
	updatedBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string, updatedBy kernel.UUID) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		updatedBy.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.updatedBy = updatedBy
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID   { return c.orderID }
func (c UpdateOrderStatusCommand) Status() string         { return c.status }
func (c UpdateOrderStatusCommand) UpdatedBy() kernel.UUID { return c.updatedBy }
