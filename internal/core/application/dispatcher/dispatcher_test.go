package dispatcher_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"foodorder/internal/core/application/dispatcher"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kind string
}

func (e testEvent) EventType() string     { return e.kind }
func (e testEvent) OccurredAt() time.Time { return time.Time{} }

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) handler(name string, err error) dispatcher.HandlerFunc {
	return func(_ context.Context, _ events.DomainEvent) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, name)
		return err
	}
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func newDispatcher(t *testing.T) (*dispatcher.Dispatcher, *dispatcher.Metrics, *bytes.Buffer) {
	t.Helper()
	metrics, err := dispatcher.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	return dispatcher.New(logger, metrics), metrics, &logs
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("should run handlers in registration order", func(t *testing.T) {
		d, _, _ := newDispatcher(t)
		rec := &recorder{}
		d.Register("order.created", rec.handler("first", nil))
		d.Register("order.created", rec.handler("second", nil))
		d.Register("food.ready", rec.handler("other", nil))

		d.Dispatch(t.Context(), "order.created", testEvent{kind: "order.created"})

		assert.Equal(t, []string{"first", "second"}, rec.names())
	})

	t.Run("should do nothing without handlers", func(t *testing.T) {
		d, _, _ := newDispatcher(t)

		assert.NotPanics(t, func() {
			d.Dispatch(t.Context(), "unknown", testEvent{kind: "unknown"})
		})
	})

	t.Run("should isolate failing and panicking handlers", func(t *testing.T) {
		d, metrics, logs := newDispatcher(t)
		rec := &recorder{}
		d.Register("order.created", rec.handler("failing", errors.New("smtp down")))
		d.Register("order.created", dispatcher.HandlerFunc(func(context.Context, events.DomainEvent) error {
			panic("boom")
		}))
		d.Register("order.created", rec.handler("last", nil))

		d.Dispatch(t.Context(), "order.created", testEvent{kind: "order.created"})

		assert.Equal(t, []string{"failing", "last"}, rec.names())
		assert.Contains(t, logs.String(), "smtp down")
		assert.Contains(t, logs.String(), "boom")
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.Handled().WithLabelValues("order.created", dispatcher.OutcomeError)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.Handled().WithLabelValues("order.created", dispatcher.OutcomePanic)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.Handled().WithLabelValues("order.created", dispatcher.OutcomeSuccess)), 0)
	})

	t.Run("should work without metrics", func(t *testing.T) {
		d := dispatcher.New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		rec := &recorder{}
		d.Register("food.ready", rec.handler("only", errors.New("ignored")))

		d.Dispatch(t.Context(), "food.ready", testEvent{kind: "food.ready"})

		assert.Equal(t, []string{"only"}, rec.names())
	})
}

func TestDispatcher_DispatchAll(t *testing.T) {
	d, _, _ := newDispatcher(t)
	rec := &recorder{}
	d.Register("a", rec.handler("a", nil))
	d.Register("b", rec.handler("b", nil))

	d.DispatchAll(t.Context(),
		dispatcher.Envelope{EventType: "b", Event: testEvent{kind: "b"}},
		dispatcher.Envelope{EventType: "a", Event: testEvent{kind: "a"}},
	)

	assert.Equal(t, []string{"b", "a"}, rec.names())
}

func TestDispatcher_Publish(t *testing.T) {
	t.Run("sync mode waits for handlers", func(t *testing.T) {
		d, _, _ := newDispatcher(t)
		rec := &recorder{}
		d.Register("order.delivered", rec.handler("h", nil))

		d.Publish(t.Context(), ports.NotifySync, testEvent{kind: "order.delivered"})

		assert.Equal(t, []string{"h"}, rec.names())
	})

	t.Run("async mode returns before handlers finish", func(t *testing.T) {
		d, _, _ := newDispatcher(t)
		release := make(chan struct{})
		done := make(chan struct{})
		d.Register("order.created", dispatcher.HandlerFunc(func(context.Context, events.DomainEvent) error {
			<-release
			close(done)
			return nil
		}))

		d.Publish(t.Context(), ports.NotifyAsync, testEvent{kind: "order.created"})

		select {
		case <-done:
			t.Fatal("handler finished before it was released")
		default:
		}
		close(release)
		d.Wait()
		<-done
	})

	t.Run("async dispatch survives caller cancellation", func(t *testing.T) {
		d, _, _ := newDispatcher(t)
		ctx, cancel := context.WithCancel(t.Context())
		var seen error
		d.Register("food.ready", dispatcher.HandlerFunc(func(ctx context.Context, _ events.DomainEvent) error {
			seen = ctx.Err()
			return nil
		}))

		cancel()
		d.Publish(ctx, ports.NotifyAsync, testEvent{kind: "food.ready"})
		d.Wait()

		assert.NoError(t, seen)
	})
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := dispatcher.NewMetrics(reg)
	require.NoError(t, err)

	_, err = dispatcher.NewMetrics(reg)
	assert.Error(t, err)
}
