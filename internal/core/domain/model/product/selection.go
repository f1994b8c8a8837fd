package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrSelectionIsNotConstructed is returned when a Selection was not created
// through the NewSelection constructor. A checkout entered with such a
// selection has no product context and must not proceed.
var ErrSelectionIsNotConstructed = errors.New("Selection must be created via NewSelection constructor")

// Selection captures what the shopper chose to buy: a product, a quantity,
// and the derived order total. It is immutable once created - the checkout
// workflow carries it through all steps without modification.
//
// Selection follows these invariants:
//   - The product must be a valid catalog record
//   - Quantity must be positive and not exceed available stock
//   - TotalAmount always equals unit price times quantity
//
// Example:
//
//	sel, err := product.NewSelection(p, 3)
//	if err != nil {
//	    // invalid quantity or product record
//	}
//	fmt.Println(sel.TotalAmount()) // p.Price * 3
type Selection struct { //nolint:recvcheck //using for validation
	product     Product
	quantity    int
	totalAmount kernel.Money

	guard guard.ConstructorGuard
}

// NewSelection creates a Selection for the given product and quantity.
// The product record must validate, the quantity must be positive and no
// greater than the product's available stock, and the total is derived
// here so it can never drift from price and quantity.
func NewSelection(p Product, quantity int) (Selection, error) {
	if err := p.Validate(); err != nil {
		return Selection{}, err
	}

	if quantity <= 0 {
		return Selection{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > p.AvailableItems {
		return Selection{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.AvailableItems)
	}

	total, err := p.Price.MulInt(quantity)
	if err != nil {
		return Selection{}, err
	}

	return Selection{
		product:     p,
		quantity:    quantity,
		totalAmount: total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Selection was created through NewSelection.
// Returns ErrSelectionIsNotConstructed for the zero value.
func (s Selection) Validate() error {
	return s.guard.Validate(ErrSelectionIsNotConstructed)
}

// Product returns the selected catalog record.
func (s Selection) Product() Product {
	return s.product
}

// Quantity returns the number of units to order.
func (s Selection) Quantity() int {
	return s.quantity
}

// TotalAmount returns unit price times quantity.
func (s Selection) TotalAmount() kernel.Money {
	return s.totalAmount
}
