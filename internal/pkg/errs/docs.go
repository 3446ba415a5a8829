// Package errs provides standardized error types for the delivery order module.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model and the application commands.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing (empty note ID, nil item)
//   - ValueIsInvalidError: a value breaks a domain rule (negative price or weight)
//   - ValueIsOutOfRangeError: a value falls outside of an allowed range (negative quantity)
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
