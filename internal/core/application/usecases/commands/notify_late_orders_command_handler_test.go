package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyLateOrdersCommand(t *testing.T) {
	_, err := commands.NewNotifyLateOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewNotifyLateOrdersCommand(time.Now())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestNotifyLateOrdersCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T) (*MockOrderRepository, *MockUserRepository, *MockUoW, *MockNotifier, commands.NotifyLateOrdersCommandHandler) {
		t.Helper()
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		uow := new(MockUoW)
		notifier := new(MockNotifier)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orders)
		uow.On("UserRepository").Return(users)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		return orders, users, uow, notifier, commands.NewNotifyLateOrdersCommandHandler(factory, notifier)
	}

	t.Run("should alert admins once per late order", func(t *testing.T) {
		ctx := t.Context()
		orders, users, _, notifier, h := setup(t)
		customer := newUser(t, "Maria Silva", user.Customer)
		late := newOrder(t, customer)
		require.NoError(t, late.StartPreparing())
		pending := newOrder(t, customer)

		orders.On("FindActive", ctx).Return([]*order.Order{late, pending}, nil)
		users.On("Get", ctx, customer.ID()).Return(customer, nil)
		notifier.On("SendToAdmins", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Priority == ports.PriorityHigh && n.Data["orderId"] == late.ID().String()
		})).Return(nil).Once()

		cmd, _ := commands.NewNotifyLateOrdersCommand(time.Now().Add(2 * time.Hour))
		sent, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)

		sent, err = h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 0, sent, "an order is reported only once")

		notifier.AssertExpectations(t)
		msg := notifier.Calls[0].Arguments.Get(1).(ports.Notification).Message
		assert.Contains(t, msg, "Maria Silva")
		assert.Contains(t, msg, late.ID().Short())
	})

	t.Run("should retry an alert that failed", func(t *testing.T) {
		ctx := t.Context()
		orders, users, _, notifier, h := setup(t)
		customer := newUser(t, "Maria Silva", user.Customer)
		late := newOrder(t, customer)
		require.NoError(t, late.StartPreparing())

		orders.On("FindActive", ctx).Return([]*order.Order{late}, nil)
		users.On("Get", ctx, customer.ID()).Return(customer, nil)
		notifier.On("SendToAdmins", ctx, mock.Anything).Return(errors.New("broker down")).Once()
		notifier.On("SendToAdmins", ctx, mock.Anything).Return(nil).Once()

		cmd, _ := commands.NewNotifyLateOrdersCommand(time.Now().Add(2 * time.Hour))
		_, err := h.Handle(ctx, cmd)
		require.EqualError(t, err, "broker down")

		sent, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		notifier.AssertExpectations(t)
	})

	t.Run("should not alert before the estimate", func(t *testing.T) {
		ctx := t.Context()
		orders, _, _, notifier, h := setup(t)
		customer := newUser(t, "Maria Silva", user.Customer)
		onTime := newOrder(t, customer)
		require.NoError(t, onTime.StartPreparing())

		orders.On("FindActive", ctx).Return([]*order.Order{onTime}, nil)

		cmd, _ := commands.NewNotifyLateOrdersCommand(time.Now())
		sent, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, sent)
		notifier.AssertNotCalled(t, "SendToAdmins", mock.Anything, mock.Anything)
	})
}
