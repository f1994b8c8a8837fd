package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductFilter narrows a catalog listing. Zero values mean no filtering.
type ProductFilter struct {
	Category string
	Search   string
}

// NewProduct carries the fields of a catalog item an admin is adding.
type NewProduct struct {
	Name           string
	Category       string
	Price          float64
	Description    string
	Manufacturer   string
	AvailableItems int
	ImageURL       string
}

// CatalogGateway defines the product catalog contract against the remote
// storefront API.
type CatalogGateway interface {
	// Products retrieves catalog items matching the filter, in the
	// server's order.
	Products(ctx context.Context, token string, filter ProductFilter) ([]product.Product, error)

	// Product retrieves a single catalog item by its remote identifier.
	Product(ctx context.Context, token string, id kernel.ID) (product.Product, error)

	// Categories retrieves the distinct category names of the catalog.
	Categories(ctx context.Context, token string) ([]string, error)

	// CreateProduct adds a catalog item. Requires an admin token.
	// Returns the server's confirmation message verbatim.
	CreateProduct(ctx context.Context, token string, item NewProduct) (string, error)
}
