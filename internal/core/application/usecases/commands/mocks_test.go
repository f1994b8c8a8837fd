package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

type MockAuthGateway struct{ mock.Mock }

func (m *MockAuthGateway) SignIn(ctx context.Context, username, password string) (ports.Credentials, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(ports.Credentials), args.Error(1)
}

func (m *MockAuthGateway) SignUp(ctx context.Context, req ports.SignUpRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) Products(ctx context.Context, token string, filter ports.ProductFilter) ([]product.Product, error) {
	args := m.Called(ctx, token, filter)
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockCatalogGateway) Product(ctx context.Context, token string, id kernel.ID) (product.Product, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockCatalogGateway) Categories(ctx context.Context, token string) ([]string, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogGateway) CreateProduct(ctx context.Context, token string, item ports.NewProduct) (string, error) {
	args := m.Called(ctx, token, item)
	return args.String(0), args.Error(1)
}

type MockAddressGateway struct{ mock.Mock }

func (m *MockAddressGateway) List(ctx context.Context, token string) ([]address.Address, error) {
	args := m.Called(ctx, token)
	var list []address.Address
	if v := args.Get(0); v != nil {
		list = v.([]address.Address)
	}
	return list, args.Error(1)
}

func (m *MockAddressGateway) Create(ctx context.Context, token string, draft address.Draft) (address.Address, error) {
	args := m.Called(ctx, token, draft)
	return args.Get(0).(address.Address), args.Error(1)
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Place(ctx context.Context, token string, draft checkout.OrderDraft) error {
	args := m.Called(ctx, token, draft)
	return args.Error(0)
}

// fakeSessionStore is an in-memory SessionRepository for handler tests.
// Real locking semantics matter here: Update must serialize per session,
// since the handlers under test re-enter it to apply completions.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[kernel.UUID]*session.Session)}
}

func (f *fakeSessionStore) Add(_ context.Context, aggregate *session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[aggregate.ID()] = aggregate
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id)
	}
	return s, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id kernel.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	removed := 0
	for id, s := range f.sessions {
		if s.Expired(now) {
			s.EndCheckout()
			delete(f.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeSessionStore) Update(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return errs.NewObjectNotFoundError("session", id)
	}
	return fn(s)
}

func storedSession(t *testing.T, store *fakeSessionStore, role session.Role) *session.Session {
	t.Helper()

	s, err := session.NewSession(kernel.NewUUID(), "token-abc", role, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), s))
	return s
}

func mustID(t *testing.T, raw string) kernel.ID {
	t.Helper()

	id, err := kernel.NewID(raw)
	require.NoError(t, err)
	return id
}

func storedProduct(t *testing.T) product.Product {
	t.Helper()

	id, err := kernel.NewID("p1")
	require.NoError(t, err)
	price, err := kernel.MoneyFromFloat(500)
	require.NoError(t, err)

	return product.Product{
		ID:             id,
		Name:           "Wireless Headphones",
		Price:          price,
		Category:       "Electronics",
		AvailableItems: 10,
	}
}

func storedAddress(t *testing.T, id string) address.Address {
	t.Helper()

	addrID, err := kernel.NewID(id)
	require.NoError(t, err)

	return address.Address{
		ID:            addrID,
		Name:          "Asha Rao",
		ContactNumber: "9876543210",
		Street:        "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
	}
}

// sessionAtAddressStep walks a stored session's checkout to the address
// step with the given addresses already applied.
func sessionAtAddressStep(t *testing.T, s *session.Session, addrs ...address.Address) *checkout.Checkout {
	t.Helper()

	sel, err := product.NewSelection(storedProduct(t), 3)
	require.NoError(t, err)

	c, err := s.StartCheckout(sel)
	require.NoError(t, err)
	require.NoError(t, c.Advance())
	if len(addrs) > 0 {
		require.NoError(t, c.SetAddresses(addrs))
	}
	return c
}
