package ports

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
)

// OrderGateway defines the order-placement contract against the remote
// storefront API.
type OrderGateway interface {
	// Place submits the order. Success means the server explicitly
	// confirmed placement; any other outcome, including a 2xx with an
	// unexpected body, is an OrderSubmitError.
	Place(ctx context.Context, token string, draft checkout.OrderDraft) error
}
