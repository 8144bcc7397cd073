package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a user. An empty role registers a customer.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	email user.Email
	role  user.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(name, email, role string) (CreateUserCommand, error) {
	address, emailErr := user.NewEmail(email)

	parsedRole := user.Customer
	var roleErr error
	if strings.TrimSpace(role) != "" {
		parsedRole, roleErr = user.ParseRole(role)
	}

	if err := errors.Join(emailErr, roleErr); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		name:  strings.TrimSpace(name),
		email: address,
		role:  parsedRole,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Name() string      { return c.name }
func (c CreateUserCommand) Email() user.Email { return c.email }
func (c CreateUserCommand) Role() user.Role   { return c.role }
