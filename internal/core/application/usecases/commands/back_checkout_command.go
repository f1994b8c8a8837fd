package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrBackCheckoutCommandIsNotConstructed = errors.New(
	"BackCheckoutCommand must be created via NewBackCheckoutCommand constructor",
)

// BackCheckoutCommand represents a request to move the session's checkout
// one step back.
type BackCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBackCheckoutCommand creates a command to step the checkout back.
func NewBackCheckoutCommand(sessionID kernel.UUID) (BackCheckoutCommand, error) {
	cmd := BackCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return BackCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BackCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrBackCheckoutCommandIsNotConstructed)
}

// SessionID returns the session whose checkout is being stepped back.
func (c BackCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *BackCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
