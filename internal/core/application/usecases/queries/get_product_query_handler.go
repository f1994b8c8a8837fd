package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetProductQueryHandler reads one catalog item through the remote API.
type GetProductQueryHandler struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionRepository
}

// NewGetProductQueryHandler creates a handler for single-item reads.
func NewGetProductQueryHandler(
	catalog ports.CatalogGateway, sessions ports.SessionRepository,
) GetProductQueryHandler {
	return GetProductQueryHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Handle fetches the item by its remote identifier.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	sess, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return ProductView{}, err
	}

	item, err := h.catalog.Product(ctx, sess.Token(), query.ProductID())
	if err != nil {
		return ProductView{}, err
	}

	return ProductView{
		ID:             item.ID.String(),
		Name:           item.Name,
		Price:          item.Price.String(),
		ImageURL:       item.ImageURL,
		Description:    item.Description,
		Category:       item.Category,
		Manufacturer:   item.Manufacturer,
		AvailableItems: item.AvailableItems,
	}, nil
}
