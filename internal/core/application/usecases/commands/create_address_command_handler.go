package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateAddressCommandHandler saves a new delivery address remotely and
// makes it the checkout's selection. The remote call runs outside the
// session lock under the checkout's pending flag, like every other
// network operation the checkout performs.
type CreateAddressCommandHandler struct {
	addresses ports.AddressGateway
	sessions  ports.SessionRepository
}

// NewCreateAddressCommandHandler creates a handler for saving addresses.
func NewCreateAddressCommandHandler(
	addresses ports.AddressGateway, sessions ports.SessionRepository,
) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		addresses: addresses,
		sessions:  sessions,
	}
}

// Handle stores the draft remotely and, on success, appends the persisted
// address to the checkout and selects it. On failure the draft's fields
// are untouched on the caller's side and an AddressCreateError carrying
// the server's message, when there is one, comes back. Returns the
// created address so the caller can show it.
func (h *CreateAddressCommandHandler) Handle(
	ctx context.Context, cmd CreateAddressCommand,
) (address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return address.Address{}, err
	}

	var token string
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return err
		}
		if err = c.BeginOperation(); err != nil {
			return err
		}
		token = s.Token()
		return nil
	})
	if err != nil {
		return address.Address{}, err
	}

	created, createErr := h.addresses.Create(ctx, token, cmd.Draft())
	if createErr != nil {
		createErr = ensureAddressCreateError(createErr)
	}

	applyErr := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return nil // checkout replaced or ended, drop the completion
		}

		c.EndOperation()
		if createErr != nil {
			c.RecordFailure(createErr)
			return nil
		}
		return c.AppendAddress(created)
	})

	if applyErr != nil && !errors.Is(applyErr, errs.ErrObjectNotFound) {
		return address.Address{}, applyErr
	}
	if createErr != nil {
		return address.Address{}, createErr
	}
	return created, nil
}
