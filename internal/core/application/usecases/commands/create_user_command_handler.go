package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

// CreateUserCommandHandler registers users. Email addresses are unique.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new user.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return kernel.UUID{}, errs.NewDomainErrorf("email %s is already in use", cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.UUID{}, err
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), cmd.Role())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Save(ctx, u); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return u.ID(), nil
}
