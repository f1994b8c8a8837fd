package commands

import (
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to save a new delivery address
// for the session's checkout. The form fields are validated into a Draft
// here, so an invalid form never reaches the remote API.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	draft     address.Draft

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to save a delivery address.
// Field-level problems come back as ValidationError naming the offending
// field, in the order the form lists them.
func NewCreateAddressCommand(
	sessionID kernel.UUID,
	name, contactNumber, street, city, state, zipCode, landmark string,
) (CreateAddressCommand, error) {
	cmd := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CreateAddressCommand{}, err
	}

	draft, err := address.NewDraft(name, contactNumber, street, city, state, zipCode, landmark)
	if err != nil {
		return CreateAddressCommand{}, err
	}
	cmd.draft = draft

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// SessionID returns the session whose checkout gains the address.
func (c CreateAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Draft returns the validated address fields.
func (c CreateAddressCommand) Draft() address.Draft {
	return c.draft
}

func (c *CreateAddressCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
