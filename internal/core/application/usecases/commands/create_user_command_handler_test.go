package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateUserCommand(t *testing.T) {
	t.Run("should default to a customer", func(t *testing.T) {
		cmd, err := commands.NewCreateUserCommand(" Maria Silva ", "Maria@Example.com", "")

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", cmd.Name())
		assert.Equal(t, "maria@example.com", cmd.Email().String())
		assert.Equal(t, user.Customer, cmd.Role())
	})

	t.Run("should parse the role", func(t *testing.T) {
		cmd, err := commands.NewCreateUserCommand("Carlos", "carlos@example.com", "admin")

		require.NoError(t, err)
		assert.Equal(t, user.Admin, cmd.Role())
	})

	t.Run("should report every malformed field", func(t *testing.T) {
		_, err := commands.NewCreateUserCommand("Carlos", "not-an-email", "chef")

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestCreateUserCommandHandler_Handle(t *testing.T) {
	newFixture := func() (*MockUserRepository, *MockUoW, *MockUserUoWFactory) {
		users := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		return users, uow, factory
	}

	t.Run("should register a new user", func(t *testing.T) {
		ctx := t.Context()
		users, uow, factory := newFixture()
		cmd, _ := commands.NewCreateUserCommand("Maria Silva", "maria@example.com", "")

		var saved *user.User
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(users).Once(),
			users.On("FindByEmail", ctx, cmd.Email()).
				Return(nil, errs.NewObjectNotFoundError("user", cmd.Email().String())).Once(),
			users.On("Save", ctx, mock.AnythingOfType("*user.User")).
				Run(func(args mock.Arguments) { saved = args.Get(1).(*user.User) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateUserCommandHandler(factory)
		id, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.True(t, saved.IsActive())
		users.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should reject a taken email", func(t *testing.T) {
		ctx := t.Context()
		users, uow, factory := newFixture()
		existing := newUser(t, "Maria Silva", user.Customer)
		cmd, _ := commands.NewCreateUserCommand("Outra Maria", existing.Email().String(), "")

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(users).Once(),
			users.On("FindByEmail", ctx, cmd.Email()).Return(existing, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateUserCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.Contains(t, err.Error(), "already in use")
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should reject a short name", func(t *testing.T) {
		ctx := t.Context()
		users, uow, factory := newFixture()
		cmd, _ := commands.NewCreateUserCommand("Jo", "jo@example.com", "")

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(users).Once()
		users.On("FindByEmail", ctx, cmd.Email()).
			Return(nil, errs.NewObjectNotFoundError("user", cmd.Email().String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateUserCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		uow.AssertExpectations(t)
	})
}
