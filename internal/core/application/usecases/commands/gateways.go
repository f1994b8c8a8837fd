// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, session locking, and
// outbound calls to the remote storefront API through the gateway ports.
//
// Handlers never hold the session lock across a network call. A command that
// needs the remote API claims the checkout's pending slot inside the lock,
// performs the call outside it, and applies the result in a second locked
// section. A completion whose session or checkout is gone by then is dropped.
package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ensureAddressFetchError keeps gateway-produced fetch errors as-is and
// wraps anything else (timeouts, transport failures) so callers always see
// the address-fetch kind.
func ensureAddressFetchError(err error) error {
	if errors.Is(err, errs.ErrAddressFetch) {
		return err
	}
	return errs.NewAddressFetchError("", err)
}

func ensureAddressCreateError(err error) error {
	if errors.Is(err, errs.ErrAddressCreate) {
		return err
	}
	return errs.NewAddressCreateError("", err)
}

func ensureOrderSubmitError(err error) error {
	if errors.Is(err, errs.ErrOrderSubmit) {
		return err
	}
	return errs.NewOrderSubmitError("", err)
}
