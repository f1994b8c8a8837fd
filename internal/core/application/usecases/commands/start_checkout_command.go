package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrStartCheckoutCommandIsNotConstructed = errors.New(
		"StartCheckoutCommand must be created via NewStartCheckoutCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// StartCheckoutCommand represents a request to begin the checkout workflow
// for a chosen product and quantity. The stock check happens against the
// freshly fetched product, not here.
type StartCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewStartCheckoutCommand creates a command to open a checkout. Validates
// that the session id and product id are constructed and the quantity is
// positive.
func NewStartCheckoutCommand(sessionID kernel.UUID, productID kernel.ID, quantity int) (StartCheckoutCommand, error) {
	cmd := StartCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return StartCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStartCheckoutCommandIsNotConstructed)
}

// SessionID returns the session the checkout belongs to.
func (c StartCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ProductID returns the remote identifier of the product being bought.
func (c StartCheckoutCommand) ProductID() kernel.ID {
	return c.productID
}

// Quantity returns how many units the user wants.
func (c StartCheckoutCommand) Quantity() int {
	return c.quantity
}

func (c *StartCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *StartCheckoutCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *StartCheckoutCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
