package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceCheckoutCommandIsNotConstructed = errors.New(
	"AdvanceCheckoutCommand must be created via NewAdvanceCheckoutCommand constructor",
)

// AdvanceCheckoutCommand represents a request to move the session's
// checkout one step forward, running whatever remote work entering the
// next step requires.
//
// Example:
//
//	cmd, err := NewAdvanceCheckoutCommand(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // step unchanged, reason recorded on the checkout
//	    return err
//	}
type AdvanceCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceCheckoutCommand creates a command to advance the checkout of
// the given session.
func NewAdvanceCheckoutCommand(sessionID kernel.UUID) (AdvanceCheckoutCommand, error) {
	cmd := AdvanceCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return AdvanceCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCheckoutCommandIsNotConstructed)
}

// SessionID returns the session whose checkout is being advanced.
func (c AdvanceCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *AdvanceCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
