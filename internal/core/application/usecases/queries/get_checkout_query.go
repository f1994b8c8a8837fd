// Package queries contains read-only operations over session and catalog
// state. Implements the Query side of the CQRS split: handlers assemble
// read models and never mutate the aggregates they look at.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCheckoutQueryIsNotConstructed = errors.New(
	"GetCheckoutQuery must be created via NewGetCheckoutQuery constructor",
)

// GetCheckoutQuery retrieves the current state of a session's checkout for
// rendering: the step, the selection, the loaded addresses and the last
// recorded failure, if any.
type GetCheckoutQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCheckoutQuery creates a query for the given session's checkout.
func NewGetCheckoutQuery(sessionID kernel.UUID) (GetCheckoutQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCheckoutQuery{}, err
	}

	return GetCheckoutQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutQueryIsNotConstructed)
}

// SessionID returns the session whose checkout is being read.
func (q GetCheckoutQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// AddressView is one saved address as the caller renders it.
type AddressView struct {
	ID            string
	Name          string
	ContactNumber string
	Street        string
	City          string
	State         string
	ZipCode       string
	Landmark      string
}

// SelectionView summarizes what is being bought.
type SelectionView struct {
	ProductID   string
	ProductName string
	UnitPrice   string
	Quantity    int
	TotalAmount string
}

// GetCheckoutQueryResponse is the checkout read model.
type GetCheckoutQueryResponse struct {
	Step              string
	Selection         SelectionView
	Addresses         []AddressView
	SelectedAddressID string
	OrderConfirmed    bool
	Pending           bool
	LastErrorMessage  string
}
