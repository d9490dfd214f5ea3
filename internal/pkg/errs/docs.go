// Package errs provides standardized error types for the hireflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - ResourceUnavailableError: for when an infrastructure resource
//     (connection pool, counter store) fails or times out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// ResourceUnavailableError exists so the HTTP layer and the retry executor can
// tell infrastructure failures apart from business-rule failures without string
// matching.
package errs
