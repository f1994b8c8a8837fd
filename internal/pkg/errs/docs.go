// Package errs provides standardized error types for the storefront
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes generic error kinds for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// plus the checkout error taxonomy:
//   - ValidationError: local, pre-network, field-identified failures
//   - AddressFetchError, AddressCreateError, OrderSubmitError: remote-call
//     failures carrying an optional server-supplied message
//   - MissingContextError: a checkout entered without a product selection
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Remote-call errors additionally expose UserMessage(), which prefers the
// server-supplied message and otherwise falls back to a generic one, never
// concatenating the two. The package-level UserMessage helper extracts the
// user-facing message from any error.
package errs
