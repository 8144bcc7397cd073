package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrNotifyLateOrdersCommandIsNotConstructed = errors.New(
	"NotifyLateOrdersCommand must be created via NewNotifyLateOrdersCommand constructor",
)

// NotifyLateOrdersCommand asks for an alert about every active order whose
// estimated delivery time is before now.
type NotifyLateOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewNotifyLateOrdersCommand(now time.Time) (NotifyLateOrdersCommand, error) {
	if now.IsZero() {
		return NotifyLateOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return NotifyLateOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c NotifyLateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyLateOrdersCommandIsNotConstructed)
}

func (c NotifyLateOrdersCommand) Now() time.Time {
	return c.now
}
