package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// StartCheckoutCommandHandler opens a checkout workflow: it fetches the
// product, builds the selection and attaches a fresh checkout to the
// session. Without a resolvable product there is nothing to check out, so
// a failed fetch is a MissingContextError and no further remote calls are
// made.
type StartCheckoutCommandHandler struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionRepository
}

// NewStartCheckoutCommandHandler creates a handler for opening checkouts.
func NewStartCheckoutCommandHandler(
	catalog ports.CatalogGateway, sessions ports.SessionRepository,
) StartCheckoutCommandHandler {
	return StartCheckoutCommandHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Handle fetches the product and starts the checkout at the product step.
// Quantity and stock rules are enforced while building the selection, so a
// request for more units than are available never produces a checkout.
func (h *StartCheckoutCommandHandler) Handle(ctx context.Context, cmd StartCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	item, err := h.catalog.Product(ctx, sess.Token(), cmd.ProductID())
	if err != nil {
		return errs.NewMissingContextErrorWithCause(err)
	}

	selection, err := product.NewSelection(item, cmd.Quantity())
	if err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		_, err := s.StartCheckout(selection)
		return err
	})
}
