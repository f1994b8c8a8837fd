package ports

import (
	"context"

	"storefront/internal/core/domain/model/address"
)

// AddressGateway defines the saved-address contract against the remote
// storefront API.
type AddressGateway interface {
	// List retrieves the user's saved addresses in the server's order.
	List(ctx context.Context, token string) ([]address.Address, error)

	// Create stores a validated draft remotely and returns the persisted
	// address with its server-assigned identifier.
	Create(ctx context.Context, token string, draft address.Draft) (address.Address, error)
}
