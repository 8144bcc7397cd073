package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

type GetUserQuery struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID, requestedBy kernel.UUID) (GetUserQuery, error) {
	if err := errors.Join(userID.Validate(), requestedBy.Validate()); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID:      userID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID      { return q.userID }
func (q GetUserQuery) RequestedBy() kernel.UUID { return q.requestedBy }
