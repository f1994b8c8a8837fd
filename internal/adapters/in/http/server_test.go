package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/adapters/out/memstore"
	"storefront/internal/adapters/out/upgradapi"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) SignIn(ctx context.Context, username, password string) (ports.Credentials, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(ports.Credentials), args.Error(1)
}

func (m *MockAuthGateway) SignUp(ctx context.Context, req ports.SignUpRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) Products(ctx context.Context, token string, filter ports.ProductFilter) ([]product.Product, error) {
	args := m.Called(ctx, token, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockCatalogGateway) Product(ctx context.Context, token string, id kernel.ID) (product.Product, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockCatalogGateway) Categories(ctx context.Context, token string) ([]string, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogGateway) CreateProduct(ctx context.Context, token string, item ports.NewProduct) (string, error) {
	args := m.Called(ctx, token, item)
	return args.String(0), args.Error(1)
}

type MockAddressGateway struct {
	mock.Mock
}

func (m *MockAddressGateway) List(ctx context.Context, token string) ([]address.Address, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]address.Address), args.Error(1)
}

func (m *MockAddressGateway) Create(ctx context.Context, token string, draft address.Draft) (address.Address, error) {
	args := m.Called(ctx, token, draft)
	return args.Get(0).(address.Address), args.Error(1)
}

type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) Place(ctx context.Context, token string, draft checkout.OrderDraft) error {
	args := m.Called(ctx, token, draft)
	return args.Error(0)
}

// testEnv wires the full server over mocked gateways and the real in-memory
// session store.
type testEnv struct {
	echo     *echo.Echo
	auth     *MockAuthGateway
	catalog  *MockCatalogGateway
	address  *MockAddressGateway
	order    *MockOrderGateway
	sessions *memstore.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:     &MockAuthGateway{},
		catalog:  &MockCatalogGateway{},
		address:  &MockAddressGateway{},
		order:    &MockOrderGateway{},
		sessions: memstore.NewSessionStore(),
	}

	handlers := Handlers{
		SignIn:        commands.NewSignInCommandHandler(env.auth, env.sessions),
		SignUp:        commands.NewSignUpCommandHandler(env.auth),
		StartCheckout: commands.NewStartCheckoutCommandHandler(env.catalog, env.sessions),
		Advance:       commands.NewAdvanceCheckoutCommandHandler(env.address, env.order, env.sessions),
		Back:          commands.NewBackCheckoutCommandHandler(env.sessions),
		Reset:         commands.NewResetCheckoutCommandHandler(env.sessions),
		SelectAddress: commands.NewSelectAddressCommandHandler(env.sessions),
		CreateAddress: commands.NewCreateAddressCommandHandler(env.address, env.sessions),
		CreateProduct: commands.NewCreateProductCommandHandler(env.catalog, env.sessions),

		GetCheckout:    queries.NewGetCheckoutQueryHandler(env.sessions),
		ListProducts:   queries.NewListProductsQueryHandler(env.catalog, env.sessions),
		GetProduct:     queries.NewGetProductQueryHandler(env.catalog, env.sessions),
		ListCategories: queries.NewListCategoriesQueryHandler(env.catalog, env.sessions),
	}

	env.echo = echo.New()
	NewServer(handlers, nil).RegisterRoutes(env.echo)
	return env
}

func (env *testEnv) request(t *testing.T, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signIn runs the sign in flow against the mocked auth gateway and returns
// the issued session id.
func (env *testEnv) signIn(t *testing.T, role session.Role) string {
	t.Helper()

	env.auth.On("SignIn", mock.Anything, "alice@example.com", "secret123").
		Return(ports.Credentials{
			Token:     "token-abc",
			Role:      role,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).Once()

	rec := env.request(t, http.MethodPost, "/api/v1/auth/signin", "",
		`{"username":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[signInResponse](t, rec)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func catalogItem(t *testing.T, id, name string, price float64, stock int) product.Product {
	t.Helper()

	productID, err := kernel.NewID(id)
	require.NoError(t, err)
	money, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)

	return product.Product{
		ID:             productID,
		Name:           name,
		Price:          money,
		Category:       "Electronics",
		AvailableItems: stock,
	}
}

func savedAddress(t *testing.T, id string) address.Address {
	t.Helper()

	addressID, err := kernel.NewID(id)
	require.NoError(t, err)
	return address.Address{
		ID:            addressID,
		Name:          "Alice",
		ContactNumber: "9876543210",
		Street:        "21 Baker Street",
		City:          "Bangalore",
		State:         "Karnataka",
		ZipCode:       "560001",
	}
}

func TestServer_SignIn(t *testing.T) {
	t.Run("issues a session", func(t *testing.T) {
		env := newTestEnv(t)

		sessionID := env.signIn(t, session.RoleUser)

		parsed, err := kernel.UUIDFromString(sessionID)
		require.NoError(t, err)
		_, err = env.sessions.Get(t.Context(), parsed)
		assert.NoError(t, err)
	})

	t.Run("returns role", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("SignIn", mock.Anything, "root@example.com", "secret123").
			Return(ports.Credentials{
				Token:     "token-admin",
				Role:      session.RoleAdmin,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/auth/signin", "",
			`{"username":"root@example.com","password":"secret123"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[signInResponse](t, rec)
		assert.Equal(t, "ADMIN", resp.Role)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/v1/auth/signin", "",
			`{"username":"alice@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("passes through a remote rejection", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("SignIn", mock.Anything, "alice@example.com", "wrong-pass").
			Return(ports.Credentials{}, &upgradapi.RemoteError{
				StatusCode: http.StatusUnauthorized,
				Message:    "Bad credentials",
			}).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/auth/signin", "",
			`{"username":"alice@example.com","password":"wrong-pass"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeJSON[ErrorResponse](t, rec)
		assert.Equal(t, "Bad credentials", resp.Message)
	})
}

func TestServer_SignUp(t *testing.T) {
	t.Run("registers an account", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.On("SignUp", mock.Anything, ports.SignUpRequest{
			Email:         "bob@example.com",
			Password:      "secret123",
			FirstName:     "Bob",
			LastName:      "Stone",
			ContactNumber: "9876543210",
		}).Return(nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/auth/signup", "",
			`{"email":"bob@example.com","password":"secret123","firstName":"Bob","lastName":"Stone","contactNumber":"9876543210"}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/v1/auth/signup", "",
			`{"email":"not-an-email","password":"secret123","firstName":"Bob","lastName":"Stone"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.auth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})
}

func TestServer_SessionHeader(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/v1/checkout", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/v1/checkout", "not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodGet, "/api/v1/checkout", kernel.NewUUID().String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_CheckoutFlow(t *testing.T) {
	t.Run("walks product to confirmed order", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		item := catalogItem(t, "p1", "Wireless Headphones", 500, 10)
		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).Return(item, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/checkout", sessionID,
			`{"productId":"p1","quantity":3}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		view := decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Product", view.Step)
		assert.Equal(t, "Wireless Headphones", view.Selection.ProductName)
		assert.Equal(t, "1500", view.Selection.TotalAmount)

		env.address.On("List", mock.Anything, "token-abc").
			Return([]address.Address{savedAddress(t, "a1")}, nil).Once()

		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		view = decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Address", view.Step)
		require.Len(t, view.Addresses, 1)
		assert.Equal(t, "a1", view.SelectedAddressID)

		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		view = decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Confirm", view.Step)

		env.order.On("Place", mock.Anything, "token-abc", mock.Anything).Return(nil).Once()

		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		view = decodeJSON[checkoutResponse](t, rec)
		assert.True(t, view.OrderConfirmed)
	})

	t.Run("advance without a checkout", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("blocked advance reports the gate reason", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		item := catalogItem(t, "p1", "Wireless Headphones", 500, 10)
		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).Return(item, nil).Once()
		env.address.On("List", mock.Anything, "token-abc").
			Return([]address.Address{}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/checkout", sessionID,
			`{"productId":"p1","quantity":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		// No addresses, so the address step gate refuses.
		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeJSON[ErrorResponse](t, rec)
		assert.Equal(t, "Please select an address or add a new one.", resp.Message)
	})

	t.Run("failed order submit carries the server message", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		item := catalogItem(t, "p1", "Wireless Headphones", 500, 10)
		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).Return(item, nil).Once()
		env.address.On("List", mock.Anything, "token-abc").
			Return([]address.Address{savedAddress(t, "a1")}, nil).Once()

		env.request(t, http.MethodPost, "/api/v1/checkout", sessionID,
			`{"productId":"p1","quantity":1}`)
		env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")

		env.order.On("Place", mock.Anything, "token-abc", mock.Anything).
			Return(errs.NewOrderSubmitError("Out of stock", nil)).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")

		require.Equal(t, http.StatusBadGateway, rec.Code)
		resp := decodeJSON[ErrorResponse](t, rec)
		assert.Equal(t, "Out of stock", resp.Message)

		// The failure is also visible on the read model.
		rec = env.request(t, http.MethodGet, "/api/v1/checkout", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Out of stock", view.LastError)
		assert.False(t, view.OrderConfirmed)
	})

	t.Run("back and reset return the updated state", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		item := catalogItem(t, "p1", "Wireless Headphones", 500, 10)
		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).Return(item, nil).Once()
		env.address.On("List", mock.Anything, "token-abc").
			Return([]address.Address{savedAddress(t, "a1")}, nil).Once()

		env.request(t, http.MethodPost, "/api/v1/checkout", sessionID,
			`{"productId":"p1","quantity":1}`)
		env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/back", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Address", view.Step)

		rec = env.request(t, http.MethodPost, "/api/v1/checkout/reset", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		view = decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "Product", view.Step)
		assert.Equal(t, 1, view.Selection.Quantity)
	})
}

func TestServer_Addresses(t *testing.T) {
	startAtAddressStep := func(t *testing.T, env *testEnv, sessionID string, addrs ...address.Address) {
		t.Helper()

		item := catalogItem(t, "p1", "Wireless Headphones", 500, 10)
		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).Return(item, nil).Once()
		env.address.On("List", mock.Anything, "token-abc").Return(addrs, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/checkout", sessionID,
			`{"productId":"p1","quantity":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = env.request(t, http.MethodPost, "/api/v1/checkout/next", sessionID, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("creates and selects a new address", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)
		startAtAddressStep(t, env, sessionID, savedAddress(t, "a1"))

		env.address.On("Create", mock.Anything, "token-abc", mock.Anything).
			Return(savedAddress(t, "a2"), nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/addresses", sessionID,
			`{"name":"Alice","contactNumber":"9876543210","street":"21 Baker Street","city":"Bangalore","state":"Karnataka","zipcode":"560001"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decodeJSON[addressResponse](t, rec)
		assert.Equal(t, "a2", created.ID)

		rec = env.request(t, http.MethodGet, "/api/v1/checkout", sessionID, "")
		view := decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "a2", view.SelectedAddressID)
		assert.Len(t, view.Addresses, 2)
	})

	t.Run("local validation never reaches the gateway", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)
		startAtAddressStep(t, env, sessionID)

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/addresses", sessionID,
			`{"name":"Alice","contactNumber":"12345","street":"21 Baker Street","city":"Bangalore","state":"Karnataka","zipcode":"560001"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeJSON[ErrorResponse](t, rec)
		assert.Equal(t, "Contact number must be a 10-digit number.", resp.Message)
		env.address.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("selects an existing address", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)
		startAtAddressStep(t, env, sessionID, savedAddress(t, "a1"), savedAddress(t, "a2"))

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/address", sessionID,
			`{"addressId":"a2"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		view := decodeJSON[checkoutResponse](t, rec)
		assert.Equal(t, "a2", view.SelectedAddressID)
	})

	t.Run("selecting an unknown address", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)
		startAtAddressStep(t, env, sessionID, savedAddress(t, "a1"))

		rec := env.request(t, http.MethodPost, "/api/v1/checkout/address", sessionID,
			`{"addressId":"a9"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Products(t *testing.T) {
	t.Run("lists the catalog", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		env.catalog.On("Products", mock.Anything, "token-abc", mock.Anything).
			Return([]product.Product{
				catalogItem(t, "p1", "Wireless Headphones", 500, 10),
				catalogItem(t, "p2", "Mechanical Keyboard", 1200, 4),
			}, nil).Once()

		rec := env.request(t, http.MethodGet, "/api/v1/products", sessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeJSON[[]productResponse](t, rec)
		require.Len(t, items, 2)
		assert.Equal(t, "Wireless Headphones", items[0].Name)
		assert.Equal(t, "500", items[0].Price)
	})

	t.Run("search filters by name", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		env.catalog.On("Products", mock.Anything, "token-abc", mock.Anything).
			Return([]product.Product{
				catalogItem(t, "p1", "Wireless Headphones", 500, 10),
				catalogItem(t, "p2", "Mechanical Keyboard", 1200, 4),
			}, nil).Once()

		rec := env.request(t, http.MethodGet, "/api/v1/products?search=keyboard", sessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeJSON[[]productResponse](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "Mechanical Keyboard", items[0].Name)
	})

	t.Run("lists categories", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		env.catalog.On("Categories", mock.Anything, "token-abc").
			Return([]string{"Electronics", "Apparel"}, nil).Once()

		rec := env.request(t, http.MethodGet, "/api/v1/products/categories", sessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		categories := decodeJSON[[]string](t, rec)
		assert.Equal(t, []string{"Electronics", "Apparel"}, categories)
	})

	t.Run("gets a single product", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		itemID, err := kernel.NewID("p1")
		require.NoError(t, err)
		env.catalog.On("Product", mock.Anything, "token-abc", itemID).
			Return(catalogItem(t, "p1", "Wireless Headphones", 500, 10), nil).Once()

		rec := env.request(t, http.MethodGet, "/api/v1/products/p1", sessionID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		item := decodeJSON[productResponse](t, rec)
		assert.Equal(t, "Wireless Headphones", item.Name)
		assert.Equal(t, 10, item.AvailableItems)
	})

	t.Run("admin creates a product", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleAdmin)

		env.catalog.On("CreateProduct", mock.Anything, "token-abc", mock.Anything).
			Return("Product Wireless Headphones added successfully", nil).Once()

		rec := env.request(t, http.MethodPost, "/api/v1/products", sessionID,
			`{"name":"Wireless Headphones","category":"Electronics","price":500,"availableItems":10}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("non-admin may not create products", func(t *testing.T) {
		env := newTestEnv(t)
		sessionID := env.signIn(t, session.RoleUser)

		rec := env.request(t, http.MethodPost, "/api/v1/products", sessionID,
			`{"name":"Wireless Headphones","category":"Electronics","price":500,"availableItems":10}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		env.catalog.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServer_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
