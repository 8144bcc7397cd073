package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
)

type UserRepository interface {
	// Save inserts the user or replaces the stored version.
	Save(ctx context.Context, aggregate *user.User) error

	// Get returns errs.ObjectNotFoundError when no user has the id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail returns errs.ObjectNotFoundError when the address is unknown.
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}
