package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// SortOrder determines how a catalog listing is ordered before it is
// returned.
type SortOrder int

const (
	// SortDefault keeps the server's order.
	SortDefault SortOrder = iota
	// SortPriceHighToLow orders by unit price, descending.
	SortPriceHighToLow
	// SortPriceLowToHigh orders by unit price, ascending.
	SortPriceLowToHigh
	// SortNewest orders by creation time, newest first.
	SortNewest
)

// SortOrderFromString maps the caller's sort parameter to a SortOrder.
// Unrecognized values fall back to the default order.
func SortOrderFromString(s string) SortOrder {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PRICE_HIGH_TO_LOW":
		return SortPriceHighToLow
	case "PRICE_LOW_TO_HIGH":
		return SortPriceLowToHigh
	case "NEWEST":
		return SortNewest
	default:
		return SortDefault
	}
}

// ListProductsQuery retrieves catalog items, optionally narrowed to a
// category or a search term and ordered by one of the supported sorts.
// A search listing keeps the server's order regardless of the requested
// sort, matching how the storefront has always presented search results.
type ListProductsQuery struct {
	sessionID kernel.UUID
	category  string
	search    string
	sortBy    SortOrder

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog listing query.
func NewListProductsQuery(sessionID kernel.UUID, category, search string, sortBy SortOrder) (ListProductsQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return ListProductsQuery{}, err
	}

	return ListProductsQuery{
		sessionID: sessionID,
		category:  strings.TrimSpace(category),
		search:    strings.TrimSpace(search),
		sortBy:    sortBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// SessionID returns the requesting session.
func (q ListProductsQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// Category returns the category filter, empty for all categories.
func (q ListProductsQuery) Category() string {
	return q.category
}

// Search returns the search term, empty for no search.
func (q ListProductsQuery) Search() string {
	return q.search
}

// SortBy returns the requested ordering.
func (q ListProductsQuery) SortBy() SortOrder {
	return q.sortBy
}

// ProductView is one catalog item as the caller renders it.
type ProductView struct {
	ID             string
	Name           string
	Price          string
	ImageURL       string
	Description    string
	Category       string
	Manufacturer   string
	AvailableItems int
}
