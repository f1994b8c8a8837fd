package queries

import (
	"context"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetCheckoutQueryHandler assembles the checkout read model.
type GetCheckoutQueryHandler struct {
	sessions ports.SessionRepository
}

// NewGetCheckoutQueryHandler creates a handler for checkout reads.
func NewGetCheckoutQueryHandler(sessions ports.SessionRepository) GetCheckoutQueryHandler {
	return GetCheckoutQueryHandler{sessions: sessions}
}

// Handle reads the session's checkout. The snapshot is taken under the
// session lock, so a half-applied completion is never observed. The last
// recorded failure comes back as its user-facing message, already resolved
// to the server's wording when one was captured.
func (h GetCheckoutQueryHandler) Handle(
	ctx context.Context, query GetCheckoutQuery,
) (GetCheckoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	var resp GetCheckoutQueryResponse
	err := h.sessions.Update(ctx, query.SessionID(), func(sess *session.Session) error {
		c, err := sess.Checkout()
		if err != nil {
			return err
		}

		selection := c.Selection()
		resp = GetCheckoutQueryResponse{
			Step: c.Step().String(),
			Selection: SelectionView{
				ProductID:   selection.Product().ID.String(),
				ProductName: selection.Product().Name,
				UnitPrice:   selection.Product().Price.String(),
				Quantity:    selection.Quantity(),
				TotalAmount: selection.TotalAmount().String(),
			},
			OrderConfirmed: c.OrderConfirmed(),
			Pending:        c.Pending(),
		}

		for _, a := range c.Addresses() {
			resp.Addresses = append(resp.Addresses, toAddressView(a))
		}
		if selected, ok := c.SelectedAddress(); ok {
			resp.SelectedAddressID = selected.ID.String()
		}
		if lastErr := c.LastError(); lastErr != nil {
			resp.LastErrorMessage = errs.UserMessage(lastErr)
		}
		return nil
	})
	if err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	return resp, nil
}

func toAddressView(a address.Address) AddressView {
	return AddressView{
		ID:            a.ID.String(),
		Name:          a.Name,
		ContactNumber: a.ContactNumber,
		Street:        a.Street,
		City:          a.City,
		State:         a.State,
		ZipCode:       a.ZipCode,
		Landmark:      a.Landmark,
	}
}
