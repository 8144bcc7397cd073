package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrMarkOrderAsDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderAsDeliveredCommand must be created via NewMarkOrderAsDeliveredCommand constructor",
)

// MarkOrderAsDeliveredCommand confirms that an order reached the customer.
type MarkOrderAsDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	deliveredBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderAsDeliveredCommand(orderID, deliveredBy kernel.UUID) (MarkOrderAsDeliveredCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		deliveredBy.Validate(),
	); err != nil {
		return MarkOrderAsDeliveredCommand{}, err
	}

	return MarkOrderAsDeliveredCommand{
		orderID:     orderID,
		deliveredBy: deliveredBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderAsDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsDeliveredCommandIsNotConstructed)
}

func (c MarkOrderAsDeliveredCommand) OrderID() kernel.UUID     { return c.orderID }
func (c MarkOrderAsDeliveredCommand) DeliveredBy() kernel.UUID { return c.deliveredBy }
