package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	userID := kernel.NewUUID()
	pizzaID := kernel.NewUUID()

	t.Run("should keep the request as given", func(t *testing.T) {
		items := []commands.CreateOrderItem{{FoodID: pizzaID, Quantity: 2, Notes: "sem cebola"}}

		cmd, err := commands.NewCreateOrderCommand(userID, items, validAddress, "interfone 12")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, userID, cmd.UserID())
		assert.Equal(t, items, cmd.Items())
		assert.Equal(t, validAddress, cmd.DeliveryAddress())
		assert.Equal(t, "interfone 12", cmd.DeliveryNotes())
	})

	t.Run("should not share the item slice with the caller", func(t *testing.T) {
		items := []commands.CreateOrderItem{{FoodID: pizzaID, Quantity: 2}}
		cmd, err := commands.NewCreateOrderCommand(userID, items, validAddress, "")
		require.NoError(t, err)

		items[0].Quantity = 99
		got := cmd.Items()
		got[0].Quantity = 50

		assert.Equal(t, 2, cmd.Items()[0].Quantity)
	})

	t.Run("should reject a zero user id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil, validAddress, "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject a zero food id", func(t *testing.T) {
		items := []commands.CreateOrderItem{{FoodID: kernel.UUID{}, Quantity: 1}}

		_, err := commands.NewCreateOrderCommand(userID, items, validAddress, "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should leave business rules to the handler", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(userID, nil, "curto", "")

		require.NoError(t, err)
	})
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
