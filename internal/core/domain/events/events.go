// Package events holds the domain events raised by the ordering core. Events
// are value snapshots: they carry denormalized data (names, formatted totals)
// so handlers never need to load aggregates, and they expose the notification
// wording as pure functions of their fields.
package events

import "time"

// Event type keys used to register and dispatch handlers.
const (
	TypeOrderCreated            = "order.created"
	TypeOrderStatusChanged      = "order.status_changed"
	TypeOrderDelivered          = "order.delivered"
	TypeFoodReady               = "food.ready"
	TypeFoodAvailabilityChanged = "food.availability_changed"
)

// DomainEvent is implemented by every event in this package.
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// ItemSummary is the name and quantity of one order line.
type ItemSummary struct {
	FoodName string
	Quantity int
}
