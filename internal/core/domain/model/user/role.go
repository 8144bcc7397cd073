package user

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Role decides what a user may do with orders and the menu.
type Role int

const (
	UnknownRole Role = iota
	CEO
	Admin
	Customer
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		CEO:      "CEO",
		Admin:    "ADMIN",
		Customer: "USER",
	}
}

// ParseRole accepts "CEO", "ADMIN" or "USER" in any case.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not one of CEO, ADMIN, USER", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsStaff is true for CEO and ADMIN.
func (r Role) IsStaff() bool {
	return r == CEO || r == Admin
}
