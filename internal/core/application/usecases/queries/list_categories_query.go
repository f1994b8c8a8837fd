package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery retrieves the catalog's category names for the
// storefront's category tabs.
type ListCategoriesQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a category listing query.
func NewListCategoriesQuery(sessionID kernel.UUID) (ListCategoriesQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return ListCategoriesQuery{}, err
	}

	return ListCategoriesQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// SessionID returns the requesting session.
func (q ListCategoriesQuery) SessionID() kernel.UUID {
	return q.sessionID
}
