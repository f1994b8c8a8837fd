package commands

import (
	"context"

	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
)

// SelectAddressCommandHandler switches the checkout's delivery address.
type SelectAddressCommandHandler struct {
	sessions ports.SessionRepository
}

// NewSelectAddressCommandHandler creates a handler for address selection.
func NewSelectAddressCommandHandler(sessions ports.SessionRepository) SelectAddressCommandHandler {
	return SelectAddressCommandHandler{
		sessions: sessions,
	}
}

// Handle selects the address by its remote identifier. The address must be
// in the checkout's loaded set; selection is refused while an operation is
// pending.
func (h *SelectAddressCommandHandler) Handle(ctx context.Context, cmd SelectAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return err
		}
		return c.SelectAddress(cmd.AddressID())
	})
}
