package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the checkout error taxonomy. Every failure the checkout
// workflow can record unwraps to exactly one of these.
var (
	// ErrValidation marks local, pre-network validation failures. These are
	// resolved in place and never reach the remote API.
	ErrValidation = errors.New("validation failed")

	// ErrAddressFetch marks a failed load of the delivery address list.
	ErrAddressFetch = errors.New("address fetch failed")

	// ErrAddressCreate marks a rejected address creation.
	ErrAddressCreate = errors.New("address create failed")

	// ErrOrderSubmit marks a failed order placement.
	ErrOrderSubmit = errors.New("order submit failed")

	// ErrMissingContext marks a checkout entered without a product selection.
	// It is fatal to the session; the only remedy is returning to the catalog.
	ErrMissingContext = errors.New("product selection is missing")
)

// Generic user-facing fallbacks, used only when the remote API supplied no
// message of its own.
const (
	addressFetchFallback  = "Failed to load addresses. Please add a new one."
	addressCreateFallback = "Failed to add address. Please check your input."
	orderSubmitFallback   = "Failed to place order. Please try again."
	missingContextMessage = "Product details are missing. Please select a product to order."
)

// UserMessage extracts the message suitable for displaying to the user from
// any taxonomy error. For errors outside the taxonomy it falls back to the
// error text itself.
func UserMessage(err error) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return err.Error()
}

// ValidationError reports a local validation failure identified by the field
// that violated its rule. It never wraps a remote cause by construction.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field with a
// user-facing reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason))
}

// UserMessage returns the field's failure reason verbatim.
func (e *ValidationError) UserMessage() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// remoteError carries the shape shared by all remote-call failures: an
// optional server-supplied message and an optional transport cause. The
// server message always wins over the generic fallback; the two are never
// concatenated.
type remoteError struct {
	ServerMessage string
	Cause         error
	sentinel      error
	fallback      string
}

func (e *remoteError) Error() string {
	switch {
	case e.ServerMessage != "" && e.Cause != nil:
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", e.sentinel, e.ServerMessage, e.Cause))
	case e.ServerMessage != "":
		return sanitize(fmt.Sprintf("%s: %s", e.sentinel, e.ServerMessage))
	case e.Cause != nil:
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.sentinel, e.Cause))
	default:
		return e.sentinel.Error()
	}
}

// UserMessage returns the server-supplied message when present, otherwise the
// generic fallback for this failure kind.
func (e *remoteError) UserMessage() string {
	if e.ServerMessage != "" {
		return sanitize(e.ServerMessage)
	}
	return e.fallback
}

func (e *remoteError) Unwrap() error {
	return e.sentinel
}

// AddressFetchError indicates the delivery address list could not be loaded.
// The previously loaded address set must be left untouched by the caller.
type AddressFetchError struct {
	remoteError
}

// NewAddressFetchError creates an AddressFetchError from an optional server
// message and an optional transport cause.
func NewAddressFetchError(serverMessage string, cause error) *AddressFetchError {
	return &AddressFetchError{remoteError{
		ServerMessage: serverMessage,
		Cause:         cause,
		sentinel:      ErrAddressFetch,
		fallback:      addressFetchFallback,
	}}
}

// AddressCreateError indicates the remote API rejected a draft address. The
// draft is expected to be kept intact for correction.
type AddressCreateError struct {
	remoteError
}

// NewAddressCreateError creates an AddressCreateError from an optional server
// message and an optional transport cause.
func NewAddressCreateError(serverMessage string, cause error) *AddressCreateError {
	return &AddressCreateError{remoteError{
		ServerMessage: serverMessage,
		Cause:         cause,
		sentinel:      ErrAddressCreate,
		fallback:      addressCreateFallback,
	}}
}

// OrderSubmitError indicates an order placement that did not produce the
// expected confirmation, whether due to transport failure or a response
// lacking the exact success message.
type OrderSubmitError struct {
	remoteError
}

// NewOrderSubmitError creates an OrderSubmitError from an optional server
// message and an optional transport cause.
func NewOrderSubmitError(serverMessage string, cause error) *OrderSubmitError {
	return &OrderSubmitError{remoteError{
		ServerMessage: serverMessage,
		Cause:         cause,
		sentinel:      ErrOrderSubmit,
		fallback:      orderSubmitFallback,
	}}
}

// MissingContextError indicates a checkout was entered without a valid
// product selection. No address or order calls may be issued from this state.
type MissingContextError struct {
	Cause error
}

// NewMissingContextError creates a MissingContextError.
func NewMissingContextError() *MissingContextError {
	return &MissingContextError{}
}

// NewMissingContextErrorWithCause creates a MissingContextError wrapping the
// validation failure that voided the selection.
func NewMissingContextErrorWithCause(cause error) *MissingContextError {
	return &MissingContextError{Cause: cause}
}

func (e *MissingContextError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrMissingContext, e.Cause))
	}
	return ErrMissingContext.Error()
}

// UserMessage returns the catalog-redirect message shown for a dead checkout.
func (e *MissingContextError) UserMessage() string {
	return missingContextMessage
}

func (e *MissingContextError) Unwrap() error {
	return ErrMissingContext
}
