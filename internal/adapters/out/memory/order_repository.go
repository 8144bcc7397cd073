package memory

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.write(func(c *changeSet) { c.orders[stored.ID().String()] = stored })
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	o, ok := lookup(r.uow.store.orders, r.uow.staged().orders, id.String())
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return cloneOrder(o)
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, func(o *order.Order) bool { return o.BelongsTo(userID) })
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(ctx, func(o *order.Order) bool { return o.Status() == status })
}

func (r *OrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(o *order.Order) bool { return o.Status().IsActive() })
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(*order.Order) bool { return true })
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.uow.write(func(c *changeSet) { c.orders[id.String()] = nil })
	return nil
}

func (r *OrderRepository) find(_ context.Context, keep func(*order.Order) bool) ([]*order.Order, error) {
	r.uow.store.mu.RLock()
	rows := merged(r.uow.store.orders, r.uow.staged().orders)
	r.uow.store.mu.RUnlock()

	matching := rows[:0]
	for _, o := range rows {
		if keep(o) {
			matching = append(matching, o)
		}
	}
	byCreation(matching,
		func(o *order.Order) time.Time { return o.CreatedAt() },
		func(o *order.Order) string { return o.ID().String() },
	)

	return cloneAll(matching, cloneOrder)
}
