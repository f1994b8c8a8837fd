package commands

import (
	"context"

	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
)

// ResetCheckoutCommandHandler restarts the checkout workflow in place.
type ResetCheckoutCommandHandler struct {
	sessions ports.SessionRepository
}

// NewResetCheckoutCommandHandler creates a handler for checkout restarts.
func NewResetCheckoutCommandHandler(sessions ports.SessionRepository) ResetCheckoutCommandHandler {
	return ResetCheckoutCommandHandler{
		sessions: sessions,
	}
}

// Handle returns the checkout to the first step, keeping the product
// selection and dropping the confirmation, the loaded addresses and any
// recorded failure. Refused while an operation is pending.
func (h *ResetCheckoutCommandHandler) Handle(ctx context.Context, cmd ResetCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return err
		}
		return c.Reset()
	})
}
