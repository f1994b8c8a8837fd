package upgradapi

import (
	"context"
	"net/http"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AddressGateway reads and writes saved addresses through the remote API.
// Failures come back in the checkout error taxonomy with the server's
// message attached when the response carried one.
type AddressGateway struct {
	client *Client
}

// NewAddressGateway creates the gateway.
func NewAddressGateway(client *Client) *AddressGateway {
	return &AddressGateway{client: client}
}

var _ ports.AddressGateway = (*AddressGateway)(nil)

type addressDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipcode"`
	Landmark      string `json:"landmark"`
}

func (d addressDTO) toDomain() (address.Address, error) {
	id, err := kernel.NewID(d.ID)
	if err != nil {
		return address.Address{}, err
	}
	return address.Address{
		ID:            id,
		Name:          d.Name,
		ContactNumber: d.ContactNumber,
		Street:        d.Street,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		Landmark:      d.Landmark,
	}, nil
}

// List retrieves the user's saved addresses in the server's order.
func (g *AddressGateway) List(ctx context.Context, token string) ([]address.Address, error) {
	var dtos []addressDTO
	err := g.client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "addresses",
		path:     "/addresses",
		token:    token,
	}, &dtos)
	if err != nil {
		return nil, errs.NewAddressFetchError(remoteMessage(err), err)
	}

	list := make([]address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := dto.toDomain()
		if err != nil {
			return nil, errs.NewAddressFetchError("", err)
		}
		list = append(list, a)
	}
	return list, nil
}

// Create stores a validated draft and returns the persisted address. The
// server may answer with the created record or only its id; either way
// the returned address carries the draft's fields.
func (g *AddressGateway) Create(ctx context.Context, token string, draft address.Draft) (address.Address, error) {
	var dto addressDTO
	err := g.client.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "create_address",
		path:     "/addresses",
		token:    token,
		body: addressDTO{
			Name:          draft.Name(),
			ContactNumber: draft.ContactNumber(),
			Street:        draft.Street(),
			City:          draft.City(),
			State:         draft.State(),
			ZipCode:       draft.ZipCode(),
			Landmark:      draft.Landmark(),
		},
	}, &dto)
	if err != nil {
		return address.Address{}, errs.NewAddressCreateError(remoteMessage(err), err)
	}

	if dto.Name == "" {
		dto.Name = draft.Name()
		dto.ContactNumber = draft.ContactNumber()
		dto.Street = draft.Street()
		dto.City = draft.City()
		dto.State = draft.State()
		dto.ZipCode = draft.ZipCode()
		dto.Landmark = draft.Landmark()
	}

	created, err := dto.toDomain()
	if err != nil {
		return address.Address{}, errs.NewAddressCreateError("", err)
	}
	return created, nil
}
