package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line: which food, how many and any
// kitchen notes. Name and price are taken from the menu when the order is placed.
type CreateOrderItem struct {
	FoodID   kernel.UUID
	Quantity int
	Notes    string
}

// CreateOrderCommand represents a customer placing an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []CreateOrderItem{
//	    {FoodID: pizzaID, Quantity: 2, Notes: "sem cebola"},
//	}, "Rua das Flores, 123", "interfone 12")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	items           []CreateOrderItem
	deliveryAddress string
	deliveryNotes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the identifiers only. Quantities, the address
// and the menu are business rules and are checked by the handler.
func NewCreateOrderCommand(
	userID kernel.UUID,
	items []CreateOrderItem,
	deliveryAddress, deliveryNotes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		deliveryNotes:   deliveryNotes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return append([]CreateOrderItem(nil), c.items...)
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	for i, item := range items {
		if err := item.FoodID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	c.items = append([]CreateOrderItem(nil), items...)
	return nil
}
