// Package dispatcher routes domain events to the handlers registered for
// their type. Handlers run one after another in registration order; a
// failing or panicking handler is logged and counted, and the remaining
// handlers still run. Nothing a handler does is reported back to the
// code that raised the event.
package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// Handler reacts to one event.
type Handler interface {
	Handle(ctx context.Context, event events.DomainEvent) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event events.DomainEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event events.DomainEvent) error {
	return f(ctx, event)
}

// Envelope pairs an event with the type key it is dispatched under.
type Envelope struct {
	EventType string
	Event     events.DomainEvent
}

var _ ports.EventPublisher = (*Dispatcher)(nil)

// Dispatcher is safe for concurrent use. Register handlers during start-up;
// registering while events are in flight is allowed but a dispatch that
// already started will not see the new handler.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	inflight sync.WaitGroup
	logger   *slog.Logger
	metrics  *Metrics
}

// New creates a dispatcher. metrics may be nil.
func New(logger *slog.Logger, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger.With("component", "event_dispatcher"),
		metrics:  metrics,
	}
}

// Register appends h to the handlers of eventType.
func (d *Dispatcher) Register(eventType string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], h)
}

// Dispatch runs every handler of eventType and returns when the last one is done.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType string, event events.DomainEvent) {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers[eventType]...)
	d.mu.RUnlock()

	if len(handlers) == 0 {
		d.logger.DebugContext(ctx, "No handlers registered", "event_type", eventType)
		return
	}

	for i, h := range handlers {
		d.run(ctx, eventType, i, h, event)
	}
}

// DispatchAll dispatches the envelopes in order.
func (d *Dispatcher) DispatchAll(ctx context.Context, envelopes ...Envelope) {
	for _, e := range envelopes {
		d.Dispatch(ctx, e.EventType, e.Event)
	}
}

// Publish dispatches event under its own type. In NotifyAsync mode it returns
// at once and the dispatch continues on its own goroutine, unaffected by the
// cancellation of ctx. Use Wait to drain those goroutines.
func (d *Dispatcher) Publish(ctx context.Context, mode ports.NotifyMode, event events.DomainEvent) {
	if mode != ports.NotifyAsync {
		d.Dispatch(ctx, event.EventType(), event)
		return
	}

	detached := context.WithoutCancel(ctx)
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.Dispatch(detached, event.EventType(), event)
	}()
}

// Wait blocks until every asynchronous dispatch started so far has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

func (d *Dispatcher) run(ctx context.Context, eventType string, index int, h Handler, event events.DomainEvent) {
	started := time.Now()
	outcome := OutcomeSuccess

	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomePanic
			d.logger.ErrorContext(ctx, "Event handler panicked",
				"event_type", eventType,
				"handler", fmt.Sprintf("%T", h),
				"handler_index", index,
				"panic", r,
			)
		}
		d.metrics.observe(eventType, outcome, float64(time.Since(started).Microseconds())/1000)
	}()

	if err := h.Handle(ctx, event); err != nil {
		outcome = OutcomeError
		d.logger.ErrorContext(ctx, "Event handler failed",
			"event_type", eventType,
			"handler", fmt.Sprintf("%T", h),
			"handler_index", index,
			"error", err,
		)
	}
}
