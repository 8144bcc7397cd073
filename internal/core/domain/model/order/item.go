package order

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("order item must be created via NewItem")

// Item is one line of an order. FoodName and UnitPrice are copied from the
// food when the order is placed, so later menu changes do not alter the order.
type Item struct {
	id        kernel.UUID
	foodID    kernel.UUID
	foodName  string
	quantity  int
	unitPrice kernel.Money
	notes     string
	guard     guard.ConstructorGuard
}

// NewItem creates an item with a fresh identifier. notes may be empty.
func NewItem(foodID kernel.UUID, foodName string, quantity int, unitPrice kernel.Money, notes string) (Item, error) {
	return RestoreItem(kernel.NewUUID(), foodID, foodName, quantity, unitPrice, notes)
}

// RestoreItem rebuilds a persisted item, applying the same rules as NewItem.
func RestoreItem(
	id, foodID kernel.UUID,
	foodName string,
	quantity int,
	unitPrice kernel.Money,
	notes string,
) (Item, error) {
	item := Item{notes: notes, guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		item.setID(id),
		item.setFoodID(foodID),
		item.setFoodName(foodName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) ID() kernel.UUID { return i.id }
func (i Item) FoodID() kernel.UUID { return i.foodID }
func (i Item) FoodName() string { return i.foodName }
func (i Item) Quantity() int { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Notes() string { return i.notes }

// Subtotal is UnitPrice x Quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Multiply(uint(i.quantity))
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setFoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.foodID = id
	return nil
}

func (i *Item) setFoodName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewDomainError("food name is required")
	}
	i.foodName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewDomainErrorf("quantity must be greater than zero, got %d", quantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}
