package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// load fetches an aggregate and turns a missing one into a DomainError named
// after what the caller was looking for. Storage failures pass through.
func load[T any](
	ctx context.Context,
	get func(context.Context, kernel.UUID) (T, error),
	id kernel.UUID,
	what string,
) (T, error) {
	v, err := get(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, errs.ErrObjectNotFound) {
			return zero, errs.NewDomainErrorWithCause(what+" not found", err)
		}
		return zero, err
	}
	return v, nil
}
