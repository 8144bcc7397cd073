// Package errs provides the standardized error types of the ordering core.
//
// Two error kinds flow out of the domain and application layers:
//   - validation errors: a primitive value is malformed (negative money, unknown
//     status or role string, bad email). They all match errors.Is(err, ErrValidation).
//   - domain errors: a business rule was violated (illegal transition, missing
//     permission, empty order, unknown entity). They all match errors.Is(err, ErrDomain).
//
// The value-level types follow one pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Neither kind is recovered inside the core; transport adapters map them to
// user-facing responses.
package errs
