package checkout

import (
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

var (
	// ErrCheckoutIsNotConstructed is returned when a Checkout instance was
	// not created through the NewCheckout factory method.
	ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

	// ErrCheckoutClosed is returned by every mutator once the checkout has
	// been torn down. A completion arriving for a closed checkout must treat
	// this as a signal to discard its result.
	ErrCheckoutClosed = errors.New("checkout is closed")

	// ErrOperationInFlight is returned when a mutation is attempted while a
	// network operation is outstanding. The pending flag is the workflow's
	// mutual-exclusion mechanism: at most one operation per checkout.
	ErrOperationInFlight = errors.New("another operation is in flight")

	// ErrOrderAlreadyConfirmed is returned when navigation or re-submission
	// is attempted after the order has been confirmed.
	ErrOrderAlreadyConfirmed = errors.New("order is already confirmed")
)

// reasonSelectAddress is the user-facing gate message for advancing past the
// address step without a selected address.
const reasonSelectAddress = "Please select an address or add a new one."

// Checkout is the aggregate root of the order workflow. It holds the
// authoritative step, the immutable product selection the workflow was
// entered with, the fetched address set with the current delivery choice,
// and the submission outcome.
//
// Checkout follows these invariants:
//   - orderConfirmed implies step == StepConfirm
//   - while pending is set, every transition and sub-operation is refused
//   - the address set is only ever replaced wholesale on a successful fetch;
//     a failed fetch leaves it untouched
//   - once closed, no mutation is applied
//
// The aggregate is not internally synchronized; callers serialize access
// per checkout instance.
type Checkout struct {
	id        kernel.UUID
	selection product.Selection

	step            Step
	addresses       []address.Address
	selectedAddress *address.Address
	orderConfirmed  bool
	pending         bool
	lastError       error
	closed          bool

	isConstructed bool
}

// NewCheckout creates a checkout positioned at StepProduct for the given
// selection. A checkout can only exist with a valid product context: an
// unconstructed selection yields a MissingContextError and no instance,
// which is what forces the caller back to the catalog.
func NewCheckout(id kernel.UUID, selection product.Selection) (*Checkout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := selection.Validate(); err != nil {
		return nil, errs.NewMissingContextErrorWithCause(err)
	}

	return &Checkout{
		id:            id,
		selection:     selection,
		step:          StepProduct,
		isConstructed: true,
	}, nil
}

// Validate ensures the Checkout instance was properly constructed through
// NewCheckout.
func (c *Checkout) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutIsNotConstructed
	}
	return nil
}

// ID returns the checkout's identifier (the owning session's id).
func (c *Checkout) ID() kernel.UUID {
	return c.id
}

// Selection returns the product selection the workflow was entered with.
func (c *Checkout) Selection() product.Selection {
	return c.selection
}

// Step returns the current workflow step.
func (c *Checkout) Step() Step {
	return c.step
}

// Addresses returns a copy of the fetched address set in server order.
func (c *Checkout) Addresses() []address.Address {
	out := make([]address.Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// SelectedAddress returns the current delivery choice, if any.
func (c *Checkout) SelectedAddress() (address.Address, bool) {
	if c.selectedAddress == nil {
		return address.Address{}, false
	}
	return *c.selectedAddress, true
}

// OrderConfirmed reports whether the order has been placed successfully.
func (c *Checkout) OrderConfirmed() bool {
	return c.orderConfirmed
}

// Pending reports whether a network operation is outstanding.
func (c *Checkout) Pending() bool {
	return c.pending
}

// LastError returns the failure recorded for the current step, if any.
func (c *Checkout) LastError() error {
	return c.lastError
}

// Closed reports whether the checkout has been torn down.
func (c *Checkout) Closed() bool {
	return c.closed
}

// ValidateAdvance is the validation gate: it decides, without mutating
// anything, whether the workflow may move forward from the current step.
// It is deterministic and safe to re-evaluate at any time, including after
// every async completion.
//
// Gate rules:
//   - StepProduct: the product selection must be present with a positive
//     quantity
//   - StepAddress: an address must be selected and no fetch in progress
//   - StepConfirm: no submission in progress and not already confirmed
func (c *Checkout) ValidateAdvance() error {
	if c.closed {
		return ErrCheckoutClosed
	}

	switch c.step {
	case StepProduct:
		if err := c.selection.Validate(); err != nil {
			return errs.NewMissingContextErrorWithCause(err)
		}
		if c.selection.Quantity() <= 0 {
			return errs.NewMissingContextError()
		}
		return nil

	case StepAddress:
		if c.pending {
			return ErrOperationInFlight
		}
		if c.selectedAddress == nil {
			return errs.NewValidationError("selectedAddress", reasonSelectAddress)
		}
		return nil

	case StepConfirm:
		if c.pending {
			return ErrOperationInFlight
		}
		if c.orderConfirmed {
			return ErrOrderAlreadyConfirmed
		}
		return nil

	default:
		return c.step.Validate()
	}
}

// CanAdvance reports whether the gate currently allows a forward move.
func (c *Checkout) CanAdvance() bool {
	return c.ValidateAdvance() == nil
}

// Advance moves the workflow one step forward after consulting the gate.
// It applies only to StepProduct and StepAddress; at StepConfirm the forward
// action is order submission, which is a separate operation. The recorded
// error is cleared on a successful transition, as each attempt starts clean.
func (c *Checkout) Advance() error {
	if err := c.ValidateAdvance(); err != nil {
		return err
	}

	next, err := c.step.Forward()
	if err != nil {
		return err
	}

	c.step = next
	c.lastError = nil
	return nil
}

// Back moves the workflow one step backward. It is refused at StepProduct,
// while an operation is in flight, and once the order has been confirmed.
func (c *Checkout) Back() error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if c.pending {
		return ErrOperationInFlight
	}
	if c.orderConfirmed {
		return ErrOrderAlreadyConfirmed
	}

	prev, err := c.step.Backward()
	if err != nil {
		return err
	}

	c.step = prev
	c.lastError = nil
	return nil
}

// Reset returns the workflow to StepProduct for a fresh order with the same
// product selection, clearing the confirmation flag, the address set and
// choice, and any recorded error. The selection itself is deliberately kept:
// the product context is never re-fetched, and a session that lost it cannot
// restart a checkout at all.
func (c *Checkout) Reset() error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if c.pending {
		return ErrOperationInFlight
	}

	c.step = StepProduct
	c.orderConfirmed = false
	c.addresses = nil
	c.selectedAddress = nil
	c.lastError = nil
	return nil
}

// BeginOperation claims the single outstanding-operation slot before a
// network call. It fails if the checkout is closed or another operation is
// already in flight, which makes a double submit a structural no-op.
func (c *Checkout) BeginOperation() error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if c.pending {
		return ErrOperationInFlight
	}

	c.pending = true
	return nil
}

// EndOperation releases the outstanding-operation slot.
func (c *Checkout) EndOperation() {
	c.pending = false
}

// SetAddresses replaces the address set with a freshly fetched list,
// preserving server order. If nothing is selected yet and the list is
// non-empty, the first address becomes the deterministic default selection.
// Callers invoke this only on fetch success; a failed fetch must leave the
// previous set untouched.
func (c *Checkout) SetAddresses(list []address.Address) error {
	if c.closed {
		return ErrCheckoutClosed
	}

	c.addresses = make([]address.Address, len(list))
	copy(c.addresses, list)

	if c.selectedAddress == nil && len(c.addresses) > 0 {
		first := c.addresses[0]
		c.selectedAddress = &first
	} else if c.selectedAddress != nil {
		// Keep the selection only if it still exists in the new set.
		if _, err := c.findAddress(c.selectedAddress.ID); err != nil {
			if len(c.addresses) > 0 {
				first := c.addresses[0]
				c.selectedAddress = &first
			} else {
				c.selectedAddress = nil
			}
		}
	}

	c.lastError = nil
	return nil
}

// AppendAddress adds a just-created address to the set and makes it the
// current selection, mirroring the remote API having accepted the draft.
func (c *Checkout) AppendAddress(a address.Address) error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if err := a.Validate(); err != nil {
		return err
	}

	c.addresses = append(c.addresses, a)
	c.selectedAddress = &a
	c.lastError = nil
	return nil
}

// SelectAddress chooses the delivery address by its remote identifier.
func (c *Checkout) SelectAddress(id kernel.ID) error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if c.pending {
		return ErrOperationInFlight
	}

	found, err := c.findAddress(id)
	if err != nil {
		return err
	}

	c.selectedAddress = &found
	c.lastError = nil
	return nil
}

// ConfirmOrder marks the order as placed. Only reachable from StepConfirm,
// which keeps the orderConfirmed-implies-StepConfirm invariant.
func (c *Checkout) ConfirmOrder() error {
	if c.closed {
		return ErrCheckoutClosed
	}
	if c.step != StepConfirm {
		return errs.NewValueIsInvalidErrorWithCause("step",
			errors.New("order can only be confirmed at the Confirm step"))
	}
	if c.orderConfirmed {
		return ErrOrderAlreadyConfirmed
	}

	c.orderConfirmed = true
	c.lastError = nil
	return nil
}

// OrderDraft assembles the write-only order request from the selected
// address and the product selection. It exists only at the final step; the
// result is handed to the order gateway and never stored.
func (c *Checkout) OrderDraft() (OrderDraft, error) {
	if c.step != StepConfirm {
		return OrderDraft{}, errs.NewValueIsInvalidErrorWithCause("step",
			errors.New("order draft is only available at the Confirm step"))
	}
	if c.selectedAddress == nil {
		return OrderDraft{}, errs.NewValidationError("selectedAddress", reasonSelectAddress)
	}

	return OrderDraft{
		AddressID: c.selectedAddress.ID,
		ProductID: c.selection.Product().ID,
		Quantity:  c.selection.Quantity(),
	}, nil
}

// RecordFailure stores a failure as the current step's visible error.
// Recording against a closed checkout is silently dropped - the instance is
// gone from the user's point of view.
func (c *Checkout) RecordFailure(err error) {
	if c.closed || err == nil {
		return
	}
	c.lastError = err
}

// Close tears the checkout down. Every subsequent mutation is refused, so a
// network completion that raced the teardown cannot corrupt state.
func (c *Checkout) Close() {
	c.closed = true
	c.pending = false
}

func (c *Checkout) findAddress(id kernel.ID) (address.Address, error) {
	for _, a := range c.addresses {
		if a.ID.IsEqual(id) {
			return a, nil
		}
	}
	return address.Address{}, errs.NewObjectNotFoundError("addressId", id.String())
}
