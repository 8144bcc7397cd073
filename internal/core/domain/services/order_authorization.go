package services

import (
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

// OrderAuthorizationService decides which user may act on which order.
//
// Business rules:
//   - Staff move orders through the kitchen: Preparing, Ready, OutForDelivery
//   - The owning customer confirms delivery
//   - Staff view and cancel any order; a customer only their own, and may
//     cancel only while it is still Pending
//
// Example usage:
//
//	auth := services.OrderAuthorizationService{}
//	if err := auth.ValidateUpdatePermission(actor, o, order.Ready); err != nil {
//	    return err // DomainError
//	}
type OrderAuthorizationService struct{}

func NewOrderAuthorizationService() OrderAuthorizationService {
	return OrderAuthorizationService{}
}

func getManagementStatuses() map[order.Status]bool {
	//nolint:exhaustive // only kitchen steps are managed by staff
	return map[order.Status]bool{
		order.Preparing:      true,
		order.Ready:          true,
		order.OutForDelivery: true,
	}
}

// CanUpdateStatus reports whether actor may move o to target. Delivered and
// Cancelled are never granted to staff here; they have dedicated flows.
func (OrderAuthorizationService) CanUpdateStatus(actor *user.User, o *order.Order, target order.Status) bool {
	if actor.CanManageOrders() {
		return getManagementStatuses()[target]
	}
	if actor.CanUpdateToDelivered() {
		return target == order.Delivered && o.BelongsTo(actor.ID())
	}
	return false
}

// ValidateUpdatePermission is CanUpdateStatus returning a DomainError.
func (s OrderAuthorizationService) ValidateUpdatePermission(actor *user.User, o *order.Order, target order.Status) error {
	if !s.CanUpdateStatus(actor, o, target) {
		return errs.NewDomainErrorf("user %s is not allowed to move order %s to %s", actor.ID(), o.ID(), target)
	}
	return nil
}

func (OrderAuthorizationService) CanViewOrder(actor *user.User, o *order.Order) bool {
	return actor.CanManageOrders() || o.BelongsTo(actor.ID())
}

func (OrderAuthorizationService) CanCancelOrder(actor *user.User, o *order.Order) bool {
	return actor.CanManageOrders() || (o.BelongsTo(actor.ID()) && o.IsPending())
}
