package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// followUp names the remote work an advance kicked off, to be performed
// after the session lock is released.
type followUp int

const (
	followUpNone followUp = iota
	followUpFetchAddresses
	followUpSubmitOrder
)

// AdvanceCheckoutCommandHandler drives the checkout forward. It is the
// single writer of step transitions: the gate runs first, the transition
// applies under the session lock, and any remote work the new step needs
// (address fetch on entering the address step, order submission at the
// confirm step) runs outside the lock under the checkout's pending flag.
type AdvanceCheckoutCommandHandler struct {
	addresses ports.AddressGateway
	orders    ports.OrderGateway
	sessions  ports.SessionRepository
}

// NewAdvanceCheckoutCommandHandler creates the handler driving checkout
// step transitions.
func NewAdvanceCheckoutCommandHandler(
	addresses ports.AddressGateway,
	orders ports.OrderGateway,
	sessions ports.SessionRepository,
) AdvanceCheckoutCommandHandler {
	return AdvanceCheckoutCommandHandler{
		addresses: addresses,
		orders:    orders,
		sessions:  sessions,
	}
}

// Handle advances the checkout one step.
//
// From the product step it transitions and then loads the saved addresses,
// exactly once per entry. A failed load keeps whatever address set the
// checkout already holds and records an AddressFetchError; the user is on
// the address step either way.
//
// From the address step the transition is pure: the gate already required
// a selected address.
//
// At the confirm step there is no further step; advancing submits the
// order. The pending flag claimed before the call makes a second submit a
// refusal rather than a duplicate order, and a submit whose session
// vanished mid-flight applies nothing.
func (h *AdvanceCheckoutCommandHandler) Handle(ctx context.Context, cmd AdvanceCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		action followUp
		token  string
		draft  checkout.OrderDraft
	)

	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return err
		}

		if err = c.ValidateAdvance(); err != nil {
			c.RecordFailure(err)
			return err
		}

		switch c.Step() {
		case checkout.StepProduct:
			if err = c.Advance(); err != nil {
				return err
			}
			if err = c.BeginOperation(); err != nil {
				return err
			}
			action = followUpFetchAddresses
			token = s.Token()
			return nil

		case checkout.StepAddress:
			return c.Advance()

		case checkout.StepConfirm:
			if err = c.BeginOperation(); err != nil {
				return err
			}
			draft, err = c.OrderDraft()
			if err != nil {
				c.EndOperation()
				return err
			}
			action = followUpSubmitOrder
			token = s.Token()
			return nil

		default:
			return checkout.ErrCheckoutIsNotConstructed
		}
	})
	if err != nil {
		return err
	}

	switch action {
	case followUpFetchAddresses:
		return h.fetchAddresses(ctx, cmd.SessionID(), token)
	case followUpSubmitOrder:
		return h.submitOrder(ctx, cmd.SessionID(), token, draft)
	default:
		return nil
	}
}

// fetchAddresses performs the address load claimed by Handle and applies
// the outcome under the session lock. The completion is dropped when the
// session or its checkout is gone.
func (h *AdvanceCheckoutCommandHandler) fetchAddresses(ctx context.Context, sessionID kernel.UUID, token string) error {
	list, fetchErr := h.addresses.List(ctx, token)
	if fetchErr != nil {
		fetchErr = ensureAddressFetchError(fetchErr)
	}

	applyErr := h.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return nil // checkout replaced or ended, drop the completion
		}

		c.EndOperation()
		if fetchErr != nil {
			c.RecordFailure(fetchErr)
			return nil
		}
		return c.SetAddresses(list)
	})

	if applyErr != nil && !errors.Is(applyErr, errs.ErrObjectNotFound) {
		return applyErr
	}
	return fetchErr
}

// submitOrder performs the order placement claimed by Handle and applies
// the outcome under the session lock.
func (h *AdvanceCheckoutCommandHandler) submitOrder(
	ctx context.Context, sessionID kernel.UUID, token string, draft checkout.OrderDraft,
) error {
	submitErr := h.orders.Place(ctx, token, draft)
	if submitErr != nil {
		submitErr = ensureOrderSubmitError(submitErr)
	}

	applyErr := h.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		c, err := s.Checkout()
		if err != nil {
			return nil // checkout replaced or ended, drop the completion
		}

		c.EndOperation()
		if submitErr != nil {
			c.RecordFailure(submitErr)
			return nil
		}
		return c.ConfirmOrder()
	})

	if applyErr != nil && !errors.Is(applyErr, errs.ErrObjectNotFound) {
		return applyErr
	}
	return submitErr
}
