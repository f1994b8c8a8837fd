package queries

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// ListProductsQueryHandler lists the catalog through the remote API and
// applies filtering and ordering locally, the way the storefront front
// end always has.
type ListProductsQueryHandler struct {
	catalog  ports.CatalogGateway
	sessions ports.SessionRepository
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(
	catalog ports.CatalogGateway, sessions ports.SessionRepository,
) ListProductsQueryHandler {
	return ListProductsQueryHandler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Handle fetches the catalog and returns the matching items. Category and
// search narrow the set; the sort applies to browse listings only, search
// results stay in the server's order.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context, query ListProductsQuery,
) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sess, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	items, err := h.catalog.Products(ctx, sess.Token(), ports.ProductFilter{
		Category: query.Category(),
		Search:   query.Search(),
	})
	if err != nil {
		return nil, err
	}

	items = filterProducts(items, query.Category(), query.Search())
	if query.Search() == "" {
		sortProducts(items, query.SortBy())
	}

	views := make([]ProductView, 0, len(items))
	for _, item := range items {
		views = append(views, ProductView{
			ID:             item.ID.String(),
			Name:           item.Name,
			Price:          item.Price.String(),
			ImageURL:       item.ImageURL,
			Description:    item.Description,
			Category:       item.Category,
			Manufacturer:   item.Manufacturer,
			AvailableItems: item.AvailableItems,
		})
	}
	return views, nil
}

func filterProducts(items []product.Product, category, search string) []product.Product {
	if category == "" && search == "" {
		return items
	}

	filtered := make([]product.Product, 0, len(items))
	for _, item := range items {
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(search)) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// sortProducts orders items in place. The sort is stable so items the
// comparison cannot tell apart keep the server's relative order.
func sortProducts(items []product.Product, order SortOrder) {
	switch order {
	case SortPriceHighToLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Decimal().GreaterThan(items[j].Price.Decimal())
		})
	case SortPriceLowToHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Decimal().LessThan(items[j].Price.Decimal())
		})
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			switch {
			case items[i].CreatedAt == nil:
				return false
			case items[j].CreatedAt == nil:
				return true
			default:
				return items[i].CreatedAt.After(*items[j].CreatedAt)
			}
		})
	default:
		// keep the server's order
	}
}
