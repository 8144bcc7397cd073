package eventhandlers

import (
	"fmt"

	"foodorder/internal/core/domain/events"
)

func unexpected(want string, got events.DomainEvent) error {
	return fmt.Errorf("expected %s event, got %T", want, got)
}
