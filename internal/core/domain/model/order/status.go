package order

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │            │           │              │
//	   └────────────┴───────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is additionally governed
// by CanBeCancelled, see Cancel.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order waits for the kitchen.
	Pending

	// Preparing means the kitchen accepted the order and is cooking it.
	Preparing

	// Ready means the food is packed and waits for pickup.
	Ready

	// OutForDelivery means the order left the restaurant.
	OutForDelivery

	// Delivered means the customer confirmed receipt. Final state.
	Delivered

	// Cancelled means the order was abandoned. Final state.
	Cancelled
)

// getStatusStrings returns the wire names of the valid statuses.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getStatusDisplayNames returns the labels shown to customers and staff.
func getStatusDisplayNames() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Aguardando",
		Preparing:      "Preparando",
		Ready:          "Pronto",
		OutForDelivery: "Saiu para Entrega",
		Delivered:      "Entregue",
		Cancelled:      "Cancelado",
	}
}

func getStatusColors() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "#FFA500",
		Preparing:      "#2196F3",
		Ready:          "#9C27B0",
		OutForDelivery: "#FF9800",
		Delivered:      "#4CAF50",
		Cancelled:      "#F44336",
	}
}

// getTransitions is the allowed-transition table. Terminal statuses have no entry.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts a wire name such as "out_for_delivery" into a Status.
// Matching is case-insensitive; anything else is a validation error.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of %s", s, strings.Join(statusNames(), ", ")),
	)
}

func statusNames() []string {
	names := make([]string, 0, len(AllStatuses()))
	for _, s := range AllStatuses() {
		names = append(names, s.String())
	}
	return names
}

// Validate checks that the Status is one of the six known values.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name ("PENDING", ...), or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// DisplayName returns the pt-BR label, e.g. "Saiu para Entrega".
func (s Status) DisplayName() string {
	if str, ok := getStatusDisplayNames()[s]; ok {
		return str
	}
	return "Desconhecido"
}

// Color returns the hex color used by clients to render the status badge.
func (s Status) Color() string {
	if c, ok := getStatusColors()[s]; ok {
		return c
	}
	return "#9E9E9E"
}

// CanTransitionTo reports whether the table allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition checks the move without performing it.
//
// Returns:
//   - nil if the table allows s -> target
//   - a DomainError naming both statuses otherwise
func (s Status) ValidateTransition(target Status) error {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return errs.NewDomainErrorf("invalid status transition from %s to %s", s, target)
	}
	return nil
}

// TransitionTo returns target when the move is allowed.
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Preparing)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return Unknown, err
	}
	return target, nil
}

// CanBeCancelled is the cancellation policy: everything except a delivered order.
// Unlike the table, it lets a cancelled order be cancelled again.
func (s Status) CanBeCancelled() bool {
	return s.Validate() == nil && s != Delivered
}

// Cancel applies the cancellation policy and returns Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanBeCancelled() {
		return Unknown, errs.NewDomainErrorf("cannot cancel an order with status %s", s)
	}
	return Cancelled, nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive is the opposite of IsTerminal for valid statuses.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}
