package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// ListCategoriesQueryHandler reads the category names through the remote
// API. A failure here is not fatal to the storefront page, but it is
// still the caller's to report.
type ListCategoriesQueryHandler struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionRepository
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(
	catalog ports.CatalogGateway, sessions ports.SessionRepository,
) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Handle fetches the distinct category names in the server's order.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sess, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	return h.catalog.Categories(ctx, sess.Token())
}
