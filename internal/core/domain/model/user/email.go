package user

import (
	"fmt"
	"regexp"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Email is a lower-cased address with a local part, a domain and a TLD.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(normalized) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", value))
	}
	return Email{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
