package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrResetCheckoutCommandIsNotConstructed = errors.New(
	"ResetCheckoutCommand must be created via NewResetCheckoutCommand constructor",
)

// ResetCheckoutCommand represents a request to restart the checkout from
// the first step with the same product selection. This is the "place new
// order" action after a confirmation.
type ResetCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetCheckoutCommand creates a command to restart the checkout.
func NewResetCheckoutCommand(sessionID kernel.UUID) (ResetCheckoutCommand, error) {
	cmd := ResetCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ResetCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrResetCheckoutCommandIsNotConstructed)
}

// SessionID returns the session whose checkout is being reset.
func (c ResetCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *ResetCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
