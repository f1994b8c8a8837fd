package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) Products(ctx context.Context, token string, filter ports.ProductFilter) ([]product.Product, error) {
	args := m.Called(ctx, token, filter)
	var list []product.Product
	if v := args.Get(0); v != nil {
		list = v.([]product.Product)
	}
	return list, args.Error(1)
}

func (m *MockCatalogGateway) Product(ctx context.Context, token string, id kernel.ID) (product.Product, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockCatalogGateway) Categories(ctx context.Context, token string) ([]string, error) {
	args := m.Called(ctx, token)
	var list []string
	if v := args.Get(0); v != nil {
		list = v.([]string)
	}
	return list, args.Error(1)
}

func (m *MockCatalogGateway) CreateProduct(ctx context.Context, token string, item ports.NewProduct) (string, error) {
	args := m.Called(ctx, token, item)
	return args.String(0), args.Error(1)
}

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

func storedSession(t *testing.T, store *fakeSessionStore) *session.Session {
	t.Helper()

	s, err := session.NewSession(kernel.NewUUID(), "token-abc", session.RoleUser, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), s))
	return s
}

func catalogProduct(t *testing.T, id, name string, price float64, createdAt *time.Time) product.Product {
	t.Helper()

	pid, err := kernel.NewID(id)
	require.NoError(t, err)
	money, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)

	return product.Product{
		ID:             pid,
		Name:           name,
		Price:          money,
		Category:       "Electronics",
		AvailableItems: 10,
		CreatedAt:      createdAt,
	}
}
