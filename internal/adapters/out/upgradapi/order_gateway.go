package upgradapi

import (
	"context"
	"net/http"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/pkg/errs"
)

// orderPlacedMessage is the remote API's confirmation. Anything else,
// even on a 2xx, means the order must not be treated as placed.
const orderPlacedMessage = "Order placed successfully"

// OrderGateway places orders through the remote API.
type OrderGateway struct {
	client *Client
}

// NewOrderGateway creates the gateway.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

type placeOrderRequest struct {
	ProductID string `json:"productId"`
	AddressID string `json:"addressId"`
	Quantity  int    `json:"quantity"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
}

// Place submits the order draft. Success requires the server's exact
// confirmation message; a 2xx carrying any other message is an
// OrderSubmitError with that message.
func (g *OrderGateway) Place(ctx context.Context, token string, draft checkout.OrderDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	var resp placeOrderResponse
	err := g.client.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "place_order",
		path:     "/orders",
		token:    token,
		body: placeOrderRequest{
			ProductID: draft.ProductID.String(),
			AddressID: draft.AddressID.String(),
			Quantity:  draft.Quantity,
		},
	}, &resp)
	if err != nil {
		return errs.NewOrderSubmitError(remoteMessage(err), err)
	}

	if resp.Message != orderPlacedMessage {
		return errs.NewOrderSubmitError(resp.Message, nil)
	}
	return nil
}
