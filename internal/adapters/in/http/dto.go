package http

import (
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/address"
)

// Request bodies. Tags cover structural shape only; field rules with
// user-facing messages (contact number, zip code, product data) belong to
// the domain and are reported through the error taxonomy instead.

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	ContactNumber string `json:"contactNumber"`
}

type startCheckoutRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type selectAddressRequest struct {
	AddressID string `json:"addressId"`
}

type createAddressRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipcode"`
	Landmark      string `json:"landmark"`
}

type createProductRequest struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
	Manufacturer   string  `json:"manufacturer"`
	AvailableItems int     `json:"availableItems"`
	ImageURL       string  `json:"imageUrl"`
}

// Response bodies.

type signInResponse struct {
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
}

type addressResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipcode"`
	Landmark      string `json:"landmark,omitempty"`
}

type selectionResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	TotalAmount string `json:"totalAmount"`
}

type checkoutResponse struct {
	Step              string            `json:"step"`
	Selection         selectionResponse `json:"selection"`
	Addresses         []addressResponse `json:"addresses"`
	SelectedAddressID string            `json:"selectedAddressId,omitempty"`
	OrderConfirmed    bool              `json:"orderConfirmed"`
	Pending           bool              `json:"pending"`
	LastError         string            `json:"lastError,omitempty"`
}

type productResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category"`
	Manufacturer   string `json:"manufacturer,omitempty"`
	AvailableItems int    `json:"availableItems"`
}

func toCheckoutResponse(view queries.GetCheckoutQueryResponse) checkoutResponse {
	addrs := make([]addressResponse, len(view.Addresses))
	for i, a := range view.Addresses {
		addrs[i] = addressResponse{
			ID:            a.ID,
			Name:          a.Name,
			ContactNumber: a.ContactNumber,
			Street:        a.Street,
			City:          a.City,
			State:         a.State,
			ZipCode:       a.ZipCode,
			Landmark:      a.Landmark,
		}
	}

	return checkoutResponse{
		Step: view.Step,
		Selection: selectionResponse{
			ProductID:   view.Selection.ProductID,
			ProductName: view.Selection.ProductName,
			UnitPrice:   view.Selection.UnitPrice,
			Quantity:    view.Selection.Quantity,
			TotalAmount: view.Selection.TotalAmount,
		},
		Addresses:         addrs,
		SelectedAddressID: view.SelectedAddressID,
		OrderConfirmed:    view.OrderConfirmed,
		Pending:           view.Pending,
		LastError:         view.LastErrorMessage,
	}
}

func toAddressResponse(a address.Address) addressResponse {
	return addressResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		ContactNumber: a.ContactNumber,
		Street:        a.Street,
		City:          a.City,
		State:         a.State,
		ZipCode:       a.ZipCode,
		Landmark:      a.Landmark,
	}
}

func toProductResponse(view queries.ProductView) productResponse {
	return productResponse{
		ID:             view.ID,
		Name:           view.Name,
		Price:          view.Price,
		ImageURL:       view.ImageURL,
		Description:    view.Description,
		Category:       view.Category,
		Manufacturer:   view.Manufacturer,
		AvailableItems: view.AvailableItems,
	}
}
