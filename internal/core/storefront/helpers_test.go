package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/memstorage"
	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/token"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDelays = Delays{
	Checkout:   5 * time.Millisecond,
	Account:    time.Millisecond,
	Review:     time.Millisecond,
	CloseReset: 5 * time.Millisecond,
}

func newTestStore(t *testing.T) port.Store {
	t.Helper()
	iss, err := token.NewIssuer("testKey", time.Hour)
	require.NoError(t, err)
	gw := memstorage.New(session.NewManager(iss, session.NewMemoryStore()), nil)
	return service.New(gw, nil)
}

func newTestStorefront(t *testing.T) (*Storefront, port.Store) {
	t.Helper()
	store := newTestStore(t)
	return New(catalog.New(), store, testDelays), store
}

func registerTestUser(t *testing.T, sf *Storefront) domain.User {
	t.Helper()
	sess, err := sf.Account.Register(t.Context(), domain.Credentials{
		Name: "testName", Email: "test@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	return sess.User
}

func testProduct(id, price string, sale string) domain.Product {
	p := domain.Product{
		ProductID: id,
		Name:      "testProduct" + id,
		Price:     decimal.RequireFromString(price),
		Currency:  "BRL",
	}
	if sale != "" {
		d := decimal.RequireFromString(sale)
		p.SalePrice = &d
	}
	return p
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Register(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockStore) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockStore) CurrentSession(
	ctx context.Context, token string,
) (domain.Session, bool) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Bool(1)
}

func (m *MockStore) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *MockStore) PlaceOrder(
	ctx context.Context, userID string, o domain.Order,
) error {
	args := m.Called(ctx, userID, o)
	return args.Error(0)
}

func (m *MockStore) Orders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *MockStore) Reviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *MockStore) AddReview(
	ctx context.Context, token string, r domain.Review,
) (domain.Review, error) {
	args := m.Called(ctx, token, r)
	return args.Get(0).(domain.Review), args.Error(1)
}
