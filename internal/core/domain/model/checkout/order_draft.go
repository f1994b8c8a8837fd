package checkout

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// OrderDraft is the write-only payload of an order placement: the selected
// delivery address, the chosen product, and the quantity. It is assembled by
// Checkout.OrderDraft at the final step, handed to the order gateway, and
// discarded - it is never persisted client-side.
type OrderDraft struct {
	AddressID kernel.ID
	ProductID kernel.ID
	Quantity  int
}

// Validate checks the draft carries everything the remote API requires.
func (d OrderDraft) Validate() error {
	var qtyErr error
	if d.Quantity <= 0 {
		qtyErr = errors.New("quantity must be greater than 0")
	}

	return errors.Join(
		d.AddressID.Validate(),
		d.ProductID.Validate(),
		qtyErr,
	)
}
