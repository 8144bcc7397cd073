package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// DefaultOrdersPageSize and DefaultFoodsPageSize apply when a query asks for no limit.
const (
	DefaultOrdersPageSize = 20
	DefaultFoodsPageSize  = 50
)

func find[T any](
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

// page cuts rows down to the window [offset, offset+limit) and reports
// whether rows remain past it. offset+limit is never computed so that a
// limit near math.MaxInt cannot wrap.
func page[T any](rows []T, limit, offset int) ([]T, bool) {
	total := len(rows)
	if offset >= total {
		return []T{}, false
	}
	remaining := total - offset
	return rows[offset : offset+min(limit, remaining)], limit < remaining
}

func checkPaging(limit, offset int) error {
	if limit < 0 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 0, "unbounded")
	}
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return nil
}
