// Package errs provides the standardized error types used across the
// order-management application.
//
// Every error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain-specific error kinds (invalid transition, forbidden, and so on) live
// next to the domain model they describe; this package holds only the generic
// validation and lookup failures shared by every layer.
package errs
