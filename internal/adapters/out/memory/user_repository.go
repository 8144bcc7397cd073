package memory

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

type UserRepository struct {
	uow *UnitOfWork
}

func (r *UserRepository) Save(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneUser(aggregate)
	if err != nil {
		return err
	}

	r.uow.write(func(c *changeSet) { c.users[stored.ID().String()] = stored })
	return nil
}

func (r *UserRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	u, ok := lookup(r.uow.store.users, r.uow.staged().users, id.String())
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}

	return cloneUser(u)
}

func (r *UserRepository) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.uow.store.mu.RLock()
	rows := merged(r.uow.store.users, r.uow.staged().users)
	r.uow.store.mu.RUnlock()

	for _, u := range rows {
		if u.Email().Equals(email) {
			return cloneUser(u)
		}
	}

	return nil, errs.NewObjectNotFoundError("user", email.String())
}
