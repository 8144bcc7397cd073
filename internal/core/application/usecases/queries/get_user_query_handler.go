package queries

import (
	"context"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// GetUserQueryHandler lets users read their own profile and staff read anyone's.
type GetUserQueryHandler struct {
	users ports.UserRepository
}

func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	target, err := find(ctx, h.users.Get, query.UserID(), "user")
	if err != nil {
		return UserResponse{}, err
	}

	requester, err := find(ctx, h.users.Get, query.RequestedBy(), "requesting user")
	if err != nil {
		return UserResponse{}, err
	}

	if !target.ID().IsEqual(requester.ID()) && !requester.CanManageOrders() {
		return UserResponse{}, errs.NewDomainErrorf(
			"user %s is not allowed to see user %s", requester.ID(), target.ID(),
		)
	}

	return newUserResponse(target), nil
}
