// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work, notification delivery and
// event publishing. Adapters implement them; use cases depend only on them.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// items included.
type OrderRepository interface {
	// Save inserts the order or replaces the stored version.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByUserID returns every order placed by the user.
	FindByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// FindByStatus returns every order currently in status.
	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// FindActive returns the orders that are neither delivered nor cancelled.
	FindActive(ctx context.Context) ([]*order.Order, error)

	FindAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its items. Deleting a missing order is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
