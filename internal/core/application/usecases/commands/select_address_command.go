package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSelectAddressCommandIsNotConstructed = errors.New(
	"SelectAddressCommand must be created via NewSelectAddressCommand constructor",
)

// SelectAddressCommand represents a request to choose a delivery address
// from the set loaded on the address step.
type SelectAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	addressID kernel.ID

	guard guard.ConstructorGuard
}

// NewSelectAddressCommand creates a command to select a delivery address.
func NewSelectAddressCommand(sessionID kernel.UUID, addressID kernel.ID) (SelectAddressCommand, error) {
	cmd := SelectAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setAddressID(addressID),
	); err != nil {
		return SelectAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectAddressCommand) Validate() error {
	return c.guard.Validate(ErrSelectAddressCommandIsNotConstructed)
}

// SessionID returns the session whose checkout the selection targets.
func (c SelectAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// AddressID returns the remote identifier of the address to select.
func (c SelectAddressCommand) AddressID() kernel.ID {
	return c.addressID
}

func (c *SelectAddressCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectAddressCommand) setAddressID(addressID kernel.ID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
