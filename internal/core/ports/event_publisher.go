package ports

import (
	"context"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/events"
)

// NotifyMode selects how a use case hands its event to the handlers.
type NotifyMode int

const (
	// NotifySync runs every handler before Publish returns.
	NotifySync NotifyMode = iota

	// NotifyAsync returns immediately; handlers run in the background.
	NotifyAsync
)

func (m NotifyMode) String() string {
	if m == NotifyAsync {
		return "async"
	}
	return "sync"
}

// ParseNotifyMode accepts "sync" or "async".
func ParseNotifyMode(s string) (NotifyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sync":
		return NotifySync, nil
	case "async":
		return NotifyAsync, nil
	default:
		return NotifySync, fmt.Errorf("unknown notify mode %q, want sync or async", s)
	}
}

// EventPublisher hands domain events to their handlers. Handler failures
// never reach the publisher's caller.
type EventPublisher interface {
	Publish(ctx context.Context, mode NotifyMode, event events.DomainEvent)
}
