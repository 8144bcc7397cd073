package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sample() ports.Notification {
	return ports.Notification{
		Title:    "👨‍🍳 Pedido em Preparo",
		Message:  "Seu pedido está sendo preparado!",
		Type:     ports.NotificationOrderStatus,
		Priority: ports.PriorityHigh,
		Data:     map[string]any{"orderId": "abc"},
	}
}

func decode(t *testing.T, msg kafka.Message) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	return env
}

func TestKafkaNotifier(t *testing.T) {
	t.Run("should key user notifications by user id", func(t *testing.T) {
		writer := new(MockWriter)
		userID := kernel.NewUUID()
		var sent []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := newKafkaNotifier(writer, time.Second, discardLogger()).SendToUser(t.Context(), userID, sample())

		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, userID.String(), string(sent[0].Key))
		env := decode(t, sent[0])
		assert.Equal(t, []string{userID.String()}, env.Audience.UserIDs)
		assert.False(t, env.Audience.Admins)
		assert.Equal(t, "order_status", env.Type)
		assert.Equal(t, "high", env.Priority)
		assert.Equal(t, "abc", env.Data["orderId"])
		writer.AssertExpectations(t)
	})

	t.Run("should route admin and broadcast notifications", func(t *testing.T) {
		writer := new(MockWriter)
		var keys []string
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				keys = append(keys, string(args.Get(1).([]kafka.Message)[0].Key))
			}).
			Return(nil).Twice()
		notifier := newKafkaNotifier(writer, 0, discardLogger())

		require.NoError(t, notifier.SendToAdmins(t.Context(), sample()))
		require.NoError(t, notifier.Broadcast(t.Context(), sample()))

		assert.Equal(t, []string{"admins", "broadcast"}, keys)
	})

	t.Run("should default type and priority", func(t *testing.T) {
		writer := new(MockWriter)
		var sent []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := newKafkaNotifier(writer, 0, discardLogger()).Broadcast(t.Context(), ports.Notification{Title: "Oi"})

		require.NoError(t, err)
		env := decode(t, sent[0])
		assert.Equal(t, "general", env.Type)
		assert.Equal(t, "normal", env.Priority)
	})

	t.Run("should refuse a notification without audience", func(t *testing.T) {
		writer := new(MockWriter)

		err := newKafkaNotifier(writer, 0, discardLogger()).Send(t.Context(), sample())

		require.ErrorIs(t, err, ErrNoAudience)
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("should return broker failures", func(t *testing.T) {
		writer := new(MockWriter)
		brokerDown := errors.New("broker down")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(brokerDown).Once()

		err := newKafkaNotifier(writer, time.Second, discardLogger()).SendToAdmins(t.Context(), sample())

		require.ErrorIs(t, err, brokerDown)
	})

	t.Run("should close the writer", func(t *testing.T) {
		writer := new(MockWriter)
		writer.On("Close").Return(nil).Once()

		require.NoError(t, newKafkaNotifier(writer, 0, discardLogger()).Close())
		writer.AssertExpectations(t)
	})
}

func TestLogNotifier(t *testing.T) {
	notifier := NewLogNotifier(discardLogger())

	require.NoError(t, notifier.SendToUser(t.Context(), kernel.NewUUID(), sample()))
	require.NoError(t, notifier.SendToAdmins(t.Context(), sample()))
	require.NoError(t, notifier.Broadcast(t.Context(), sample()))
	require.ErrorIs(t, notifier.Send(t.Context(), sample()), ErrNoAudience)
}
