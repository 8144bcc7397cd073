package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderCommandFixture struct {
	customer  *user.User
	admin     *user.User
	order     *order.Order
	orders    *MockOrderRepository
	users     *MockUserRepository
	uow       *MockUoW
	factory   *MockOrderUoWFactory
	publisher *MockPublisher
}

func newOrderCommandFixture(t *testing.T) *orderCommandFixture {
	t.Helper()
	customer := newUser(t, "Maria Silva", user.Customer)
	f := &orderCommandFixture{
		customer:  customer,
		admin:     newUser(t, "Carlos Admin", user.Admin),
		order:     newOrder(t, customer),
		orders:    new(MockOrderRepository),
		users:     new(MockUserRepository),
		uow:       new(MockUoW),
		factory:   new(MockOrderUoWFactory),
		publisher: new(MockPublisher),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	return f
}

func (f *orderCommandFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should keep the raw status", func(t *testing.T) {
		orderID, actorID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, "preparing", actorID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, "preparing", cmd.Status())
		assert.Equal(t, actorID, cmd.UpdatedBy())
	})

	t.Run("should reject zero ids", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, "READY", kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(),
			commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newOrderCommandFixture(t)
	cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), "PREPARING", f.admin.ID())

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.uow.On("UserRepository").Return(f.users).Once(),
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once(),
		f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once(),
		f.orders.On("Save", ctx, f.order).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, ports.NotifySync, mock.AnythingOfType("events.OrderStatusChanged")).Return().Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, result.PreviousStatus)
	assert.Equal(t, order.Preparing, result.NewStatus)
	assert.NotNil(t, f.order.EstimatedDeliveryTime())

	event := f.publisher.Calls[0].Arguments.Get(2).(events.OrderStatusChanged)
	assert.Equal(t, order.Pending, event.OldStatus)
	assert.Equal(t, order.Preparing, event.NewStatus)
	assert.Equal(t, "Maria Silva", event.UserName)
	assert.Equal(t, "Carlos Admin", event.ChangedByName)
	f.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnknownStatus(t *testing.T) {
	f := newOrderCommandFixture(t)
	cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), "LOST", f.admin.ID())

	h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrDomain)
	assert.NotErrorIs(t, err, errs.ErrValidation)
	f.factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	tests := []struct {
		name   string
		status string
		actor  func(f *orderCommandFixture) *user.User
	}{
		{"customer cannot start preparing", "PREPARING", func(f *orderCommandFixture) *user.User { return f.customer }},
		{"staff cannot confirm delivery here", "DELIVERED", func(f *orderCommandFixture) *user.User { return f.admin }},
		{"nobody moves back to pending", "PENDING", func(f *orderCommandFixture) *user.User { return f.admin }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newOrderCommandFixture(t)
			actor := tt.actor(f)
			cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), tt.status, actor.ID())

			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("OrderRepository").Return(f.orders).Once()
			f.uow.On("UserRepository").Return(f.users).Once()
			f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
			f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil)
			f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Maybe()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrDomain)
			assert.Equal(t, order.Pending, f.order.Status())
			f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	f := newOrderCommandFixture(t)
	cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), "READY", f.admin.ID())

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.uow.On("UserRepository").Return(f.users).Once()
	f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
	f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDomain)
	assert.Contains(t, err.Error(), "PENDING")
	assert.Contains(t, err.Error(), "READY")
	f.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	f := newOrderCommandFixture(t)
	cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), "PREPARING", f.admin.ID())

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.uow.On("UserRepository").Return(f.users).Once()
	f.orders.On("Get", ctx, f.order.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", f.order.ID().String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDomain)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newOrderCommandFixture(t)
	cmd, _ := commands.NewUpdateOrderStatusCommand(f.order.ID(), "PREPARING", f.admin.ID())

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orders).Once(),
		f.uow.On("UserRepository").Return(f.users).Once(),
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once(),
		f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once(),
		f.orders.On("Save", ctx, f.order).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(f.factory, f.publisher, ports.NotifySync)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should let the owner cancel a preparing order", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		require.NoError(t, f.order.StartPreparing())
		cmd, err := commands.NewCancelOrderCommand(f.order.ID(), f.customer.ID(), "  mudei de ideia ")
		require.NoError(t, err)
		assert.Equal(t, "mudei de ideia", cmd.Reason())

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("OrderRepository").Return(f.orders).Once(),
			f.uow.On("UserRepository").Return(f.users).Once(),
			f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
			f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Twice(),
			f.orders.On("Save", ctx, f.order).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.publisher.On("Publish", ctx, ports.NotifySync, mock.AnythingOfType("events.OrderStatusChanged")).Return().Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(f.factory, f.publisher, ports.NotifySync, discardLogger())
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, result.PreviousStatus)
		assert.True(t, f.order.IsCancelled())
		event := f.publisher.Calls[0].Arguments.Get(2).(events.OrderStatusChanged)
		assert.Equal(t, order.Cancelled, event.NewStatus)
		f.assertExpectations(t)
	})

	t.Run("should stop the owner once the order left the kitchen", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		require.NoError(t, f.order.StartPreparing())
		require.NoError(t, f.order.MarkAsReady())
		require.NoError(t, f.order.SendForDelivery())
		cmd, _ := commands.NewCancelOrderCommand(f.order.ID(), f.customer.ID(), "")

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Twice()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(f.factory, f.publisher, ports.NotifySync, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.True(t, f.order.IsOutForDelivery())
		f.assertExpectations(t)
	})

	t.Run("should let staff cancel an order out for delivery", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		require.NoError(t, f.order.StartPreparing())
		require.NoError(t, f.order.MarkAsReady())
		require.NoError(t, f.order.SendForDelivery())
		cmd, _ := commands.NewCancelOrderCommand(f.order.ID(), f.admin.ID(), "")

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.orders.On("Save", ctx, f.order).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.publisher.On("Publish", ctx, ports.NotifySync, mock.Anything).Return().Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(f.factory, f.publisher, ports.NotifySync, discardLogger())
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, result.PreviousStatus)
		f.assertExpectations(t)
	})

	t.Run("should refuse a stranger", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		stranger := newUser(t, "João Souza", user.Customer)
		cmd, _ := commands.NewCancelOrderCommand(f.order.ID(), stranger.ID(), "")

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, stranger.ID()).Return(stranger, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(f.factory, f.publisher, ports.NotifySync, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.True(t, f.order.IsPending())
		f.assertExpectations(t)
	})

	t.Run("should not cancel a delivered order even for staff", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		require.NoError(t, f.order.StartPreparing())
		require.NoError(t, f.order.MarkAsReady())
		require.NoError(t, f.order.SendForDelivery())
		require.NoError(t, f.order.MarkAsDelivered())
		cmd, _ := commands.NewCancelOrderCommand(f.order.ID(), f.admin.ID(), "")

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(f.factory, f.publisher, ports.NotifySync, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.True(t, f.order.IsDelivered())
		f.assertExpectations(t)
	})
}

func TestMarkOrderAsDeliveredCommandHandler_Handle(t *testing.T) {
	outForDelivery := func(t *testing.T, f *orderCommandFixture) {
		t.Helper()
		require.NoError(t, f.order.StartPreparing())
		require.NoError(t, f.order.MarkAsReady())
		require.NoError(t, f.order.SendForDelivery())
	}

	t.Run("should let the customer confirm", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		outForDelivery(t, f)
		cmd, err := commands.NewMarkOrderAsDeliveredCommand(f.order.ID(), f.customer.ID())
		require.NoError(t, err)

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("OrderRepository").Return(f.orders).Once(),
			f.uow.On("UserRepository").Return(f.users).Once(),
			f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
			f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Twice(),
			f.orders.On("Save", ctx, f.order).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.publisher.On("Publish", ctx, ports.NotifySync, mock.AnythingOfType("events.OrderDelivered")).Return().Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewMarkOrderAsDeliveredCommandHandler(f.factory, f.publisher, ports.NotifySync)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, f.order.DeliveredAt())
		assert.Equal(t, *f.order.DeliveredAt(), result.DeliveredAt)
		assert.Equal(t, 0, result.DeliveryTimeMinutes)

		event := f.publisher.Calls[0].Arguments.Get(2).(events.OrderDelivered)
		assert.Equal(t, f.customer.ID(), event.DeliveredBy)
		assert.True(t, event.WasDeliveredOnTime())
		f.assertExpectations(t)
	})

	t.Run("should let staff confirm", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		outForDelivery(t, f)
		cmd, _ := commands.NewMarkOrderAsDeliveredCommand(f.order.ID(), f.admin.ID())

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.users.On("Get", ctx, f.admin.ID()).Return(f.admin, nil).Once()
		f.orders.On("Save", ctx, f.order).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.publisher.On("Publish", ctx, ports.NotifySync, mock.Anything).Return().Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewMarkOrderAsDeliveredCommandHandler(f.factory, f.publisher, ports.NotifySync)
		_, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, f.order.IsDelivered())
		f.assertExpectations(t)
	})

	t.Run("should refuse another customer", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		outForDelivery(t, f)
		stranger := newUser(t, "João Souza", user.Customer)
		cmd, _ := commands.NewMarkOrderAsDeliveredCommand(f.order.ID(), stranger.ID())

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Once()
		f.users.On("Get", ctx, stranger.ID()).Return(stranger, nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewMarkOrderAsDeliveredCommandHandler(f.factory, f.publisher, ports.NotifySync)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.True(t, f.order.IsOutForDelivery())
		f.assertExpectations(t)
	})

	t.Run("should reject a pending order", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderCommandFixture(t)
		cmd, _ := commands.NewMarkOrderAsDeliveredCommand(f.order.ID(), f.customer.ID())

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("OrderRepository").Return(f.orders).Once()
		f.uow.On("UserRepository").Return(f.users).Once()
		f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
		f.users.On("Get", ctx, f.customer.ID()).Return(f.customer, nil).Twice()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewMarkOrderAsDeliveredCommandHandler(f.factory, f.publisher, ports.NotifySync)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomain)
		assert.Nil(t, f.order.DeliveredAt())
		f.assertExpectations(t)
	})
}
