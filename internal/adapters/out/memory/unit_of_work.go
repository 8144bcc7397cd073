package memory

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without a Begin.
var ErrInvalidTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Outside a transaction
// writes go straight to the store. Not safe for concurrent use; create one
// per operation.
type UnitOfWork struct {
	store *Store
	tx    *changeSet
}

// Begin is a no-op when a transaction is already open.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx == nil {
		uow.tx = newChangeSet()
	}
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.store.apply(uow.tx)
	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{uow: uow}
}

func (uow *UnitOfWork) FoodRepository() ports.FoodRepository {
	return &FoodRepository{uow: uow}
}

// write stages the change or, outside a transaction, applies it at once.
func (uow *UnitOfWork) write(stage func(c *changeSet)) {
	if uow.tx != nil {
		stage(uow.tx)
		return
	}
	c := newChangeSet()
	stage(c)
	uow.store.apply(c)
}

// staged returns the pending change set, or an empty one outside a transaction.
func (uow *UnitOfWork) staged() *changeSet {
	if uow.tx != nil {
		return uow.tx
	}
	return &changeSet{}
}
