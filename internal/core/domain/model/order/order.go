package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MinDeliveryAddressLength is counted in characters, not bytes.
	MinDeliveryAddressLength = 10

	// preparationAllowance is the kitchen time used for the delivery estimate,
	// whatever the order contains.
	preparationAllowance = 30 * time.Minute

	deliveryAllowance = 30 * time.Minute
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering core. It owns its items and
// enforces the status lifecycle; see Status for the transition table.
//
// Order follows these invariants:
//   - Has at least one item, all priced in the same currency
//   - Delivery address has at least MinDeliveryAddressLength characters
//   - DeliveredAt is set exactly when the status is Delivered
//   - Total is derived from the items on every call
//
// Mutators either succeed completely or leave the order untouched.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID
	items  []Item
	status Status

	deliveryAddress string
	deliveryNotes   string

	createdAt             time.Time
	updatedAt             time.Time
	estimatedDeliveryTime *time.Time
	deliveredAt           *time.Time

	isConstructed bool
}

// NewOrder places a new order in Pending status.
//
// Example:
//
//	item, _ := order.NewItem(pizza.ID(), pizza.Name(), 2, pizza.Price(), "sem cebola")
//	o, err := order.NewOrder(customer.ID(), []order.Item{item}, "Rua das Flores, 123", "")
//	if err != nil {
//	    // DomainError: no items or address too short
//	}
func NewOrder(userID kernel.UUID, items []Item, deliveryAddress, deliveryNotes string) (*Order, error) {
	now := time.Now()
	o := &Order{
		id:            kernel.NewUUID(),
		status:        Pending,
		deliveryNotes: deliveryNotes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State carries a persisted order back into the domain.
type State struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	Items                 []Item
	Status                Status
	DeliveryAddress       string
	DeliveryNotes         string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	EstimatedDeliveryTime *time.Time
	DeliveredAt           *time.Time
}

// RestoreOrder rebuilds an order loaded from storage. It re-checks every
// invariant so corrupted rows surface as errors instead of broken aggregates.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		deliveryNotes:         s.DeliveryNotes,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		estimatedDeliveryTime: copyTime(s.EstimatedDeliveryTime),
		deliveredAt:           copyTime(s.DeliveredAt),
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setUserID(s.UserID),
		o.setItems(s.Items),
		o.setDeliveryAddress(s.DeliveryAddress),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID is the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy; changing it does not affect the order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// EstimatedDeliveryTime is nil until the kitchen starts preparing.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return copyTime(o.estimatedDeliveryTime)
}

// DeliveredAt is nil unless the order is Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return copyTime(o.deliveredAt)
}

// Currency of every item, and therefore of the total.
func (o *Order) Currency() string {
	return o.items[0].UnitPrice().Currency()
}

// Total is the sum of the item subtotals. Items share one currency, so the
// fold cannot fail.
func (o *Order) Total() kernel.Money {
	total := o.items[0].Subtotal()
	for _, item := range o.items[1:] {
		total = total.MustAdd(item.Subtotal())
	}
	return total
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.Total().Amount()
}

func (o *Order) TotalFormatted() string {
	return o.Total().Format()
}

// ItemCount is the number of units ordered, not the number of lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

func (o *Order) IsPending() bool { return o.status == Pending }
func (o *Order) IsPreparing() bool { return o.status == Preparing }
func (o *Order) IsReady() bool { return o.status == Ready }
func (o *Order) IsOutForDelivery() bool { return o.status == OutForDelivery }
func (o *Order) IsDelivered() bool { return o.status == Delivered }
func (o *Order) IsCancelled() bool { return o.status == Cancelled }

// BelongsTo reports whether userID placed the order.
func (o *Order) BelongsTo(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// IsLate reports whether the estimated delivery time passed before now while
// the order is still active.
func (o *Order) IsLate(now time.Time) bool {
	return o.status.IsActive() && o.estimatedDeliveryTime != nil && now.After(*o.estimatedDeliveryTime)
}

// StartPreparing moves Pending -> Preparing and sets the delivery estimate:
// now + the longest per-item preparation allowance + the delivery allowance.
func (o *Order) StartPreparing() error {
	if err := o.transitionTo(Preparing); err != nil {
		return err
	}
	eta := o.updatedAt.Add(preparationAllowance + deliveryAllowance)
	o.estimatedDeliveryTime = &eta
	return nil
}

// MarkAsReady moves Preparing -> Ready.
func (o *Order) MarkAsReady() error {
	return o.transitionTo(Ready)
}

// SendForDelivery moves Ready -> OutForDelivery.
func (o *Order) SendForDelivery() error {
	return o.transitionTo(OutForDelivery)
}

// MarkAsDelivered moves OutForDelivery -> Delivered and stamps DeliveredAt.
func (o *Order) MarkAsDelivered() error {
	if err := o.transitionTo(Delivered); err != nil {
		return err
	}
	deliveredAt := o.updatedAt
	o.deliveredAt = &deliveredAt
	return nil
}

// Cancel moves any non-delivered order to Cancelled, including one that is
// already cancelled.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) transitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewDomainError("order must have at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.UnitPrice().Currency() != items[0].UnitPrice().Currency() {
			return errs.NewDomainErrorf("all items must be priced in %s, %s is priced in %s",
				items[0].UnitPrice().Currency(), item.FoodName(), item.UnitPrice().Currency())
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if utf8.RuneCountInString(address) < MinDeliveryAddressLength {
		return errs.NewDomainErrorf("delivery address must have at least %d characters", MinDeliveryAddressLength)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Delivered && o.deliveredAt == nil {
		return errs.NewValueIsInvalidErrorWithCause("delivered at", fmt.Errorf("%s order must have a delivery time", status))
	}
	if status != Delivered && o.deliveredAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivered at", fmt.Errorf("%s order cannot have a delivery time", status))
	}
	o.status = status
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
