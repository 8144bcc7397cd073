package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a user withdrawing an order. Reason is
// optional and only reaches the logs.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	cancelledBy kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, cancelledBy kernel.UUID, reason string) (CancelOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		cancelledBy.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:     orderID,
		cancelledBy: cancelledBy,
		reason:      strings.TrimSpace(reason),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c CancelOrderCommand) CancelledBy() kernel.UUID { return c.cancelledBy }
func (c CancelOrderCommand) Reason() string           { return c.reason }
