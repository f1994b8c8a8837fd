package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog item for the details page.
type GetProductQuery struct {
	sessionID kernel.UUID
	productID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one catalog item.
func NewGetProductQuery(sessionID kernel.UUID, productID kernel.ID) (GetProductQuery, error) {
	if err := errors.Join(sessionID.Validate(), productID.Validate()); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		sessionID: sessionID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// SessionID returns the requesting session.
func (q GetProductQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// ProductID returns the item's remote identifier.
func (q GetProductQuery) ProductID() kernel.ID {
	return q.productID
}
