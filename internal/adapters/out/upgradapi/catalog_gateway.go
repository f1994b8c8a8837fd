package upgradapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
)

// CatalogGateway reads and writes the product catalog through the remote
// API.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates the gateway.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

type productDTO struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Price          float64    `json:"price"`
	ImageURL       string     `json:"imageUrl"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Manufacturer   string     `json:"manufacturer"`
	AvailableItems int        `json:"availableItems"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

func (d productDTO) toDomain() (product.Product, error) {
	id, err := kernel.NewID(d.ID)
	if err != nil {
		return product.Product{}, err
	}
	price, err := kernel.MoneyFromFloat(d.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.Product{
		ID:             id,
		Name:           d.Name,
		Price:          price,
		ImageURL:       d.ImageURL,
		Description:    d.Description,
		Category:       d.Category,
		Manufacturer:   d.Manufacturer,
		AvailableItems: d.AvailableItems,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// Products lists the catalog. The remote API returns the full set; any
// narrowing the filter asks for happens on the caller's side, so the
// filter is accepted here only to keep the port's contract in one place.
func (g *CatalogGateway) Products(ctx context.Context, token string, _ ports.ProductFilter) ([]product.Product, error) {
	var dtos []productDTO
	err := g.client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "products",
		path:     "/products",
		token:    token,
	}, &dtos)
	if err != nil {
		return nil, err
	}

	items := make([]product.Product, 0, len(dtos))
	for _, dto := range dtos {
		item, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Product retrieves one catalog item.
func (g *CatalogGateway) Product(ctx context.Context, token string, id kernel.ID) (product.Product, error) {
	var dto productDTO
	err := g.client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "product",
		path:     "/products/" + id.String(),
		token:    token,
	}, &dto)
	if err != nil {
		return product.Product{}, err
	}
	return dto.toDomain()
}

// Categories retrieves the distinct category names.
func (g *CatalogGateway) Categories(ctx context.Context, token string) ([]string, error) {
	var names []string
	err := g.client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "categories",
		path:     "/products/categories",
		token:    token,
	}, &names)
	if err != nil {
		return nil, err
	}
	return names, nil
}

type createProductRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	Description    string  `json:"description,omitempty"`
	Manufacturer   string  `json:"manufacturer,omitempty"`
	AvailableItems int     `json:"availableItems"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

type createProductResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// CreateProduct adds a catalog item and returns the server's confirmation
// message. Responses that carry the created item instead of a message are
// normalized to the confirmation wording the API documents.
func (g *CatalogGateway) CreateProduct(ctx context.Context, token string, item ports.NewProduct) (string, error) {
	var resp createProductResponse
	err := g.client.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "create_product",
		path:     "/products",
		token:    token,
		body: createProductRequest{
			Name:           item.Name,
			Category:       item.Category,
			Price:          item.Price,
			Description:    item.Description,
			Manufacturer:   item.Manufacturer,
			AvailableItems: item.AvailableItems,
			ImageURL:       item.ImageURL,
		},
	}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Message != "" {
		return resp.Message, nil
	}
	if resp.Name != "" {
		return fmt.Sprintf("Product %s added successfully", resp.Name), nil
	}
	return "", nil
}
