package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every error raised for malformed primitive input.
	ErrValidation = errors.New("validation failed")

	// ErrDomain matches every error raised for a violated business rule.
	ErrDomain = errors.New("business rule violated")
)

// ValidationError is a malformed-input error carrying a human readable message.
type ValidationError struct {
	Message string
	Cause   error
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewValidationErrorWithCause(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	return format(ErrValidation, e.Message, e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	return chain(ErrValidation, e.Cause)
}

// DomainError is a business-rule violation carrying a human readable message.
// A cause, when present, stays reachable through errors.Is and errors.As.
type DomainError struct {
	Message string
	Cause   error
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// NewDomainErrorf formats the message like fmt.Sprintf.
func NewDomainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

func NewDomainErrorWithCause(message string, cause error) *DomainError {
	return &DomainError{Message: message, Cause: cause}
}

func (e *DomainError) Error() string {
	return format(ErrDomain, e.Message, e.Cause)
}

func (e *DomainError) Unwrap() []error {
	return chain(ErrDomain, e.Cause)
}

func format(kind error, message string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", kind, message, cause)
	}
	return fmt.Sprintf("%s: %s", kind, message)
}

func chain(kind, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}
