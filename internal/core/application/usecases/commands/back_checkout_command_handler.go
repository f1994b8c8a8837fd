package commands

import (
	"context"

	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
)

// BackCheckoutCommandHandler steps the checkout back. Purely local; no
// remote calls are made and nothing already loaded is discarded.
type BackCheckoutCommandHandler struct {
	sessions ports.SessionRepository
}

// NewBackCheckoutCommandHandler creates a handler for stepping back.
func NewBackCheckoutCommandHandler(sessions ports.SessionRepository) BackCheckoutCommandHandler {
	return BackCheckoutCommandHandler{
		sessions: sessions,
	}
}

// Handle moves the checkout one step back. Refused on the first step,
// while an operation is pending and once the order is confirmed.
func (h *BackCheckoutCommandHandler) Handle(ctx context.Context, cmd BackCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return err
		}
		return c.Back()
	})
}
