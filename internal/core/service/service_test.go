package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateAccount(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockGateway) Authenticate(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockGateway) CurrentSession(
	ctx context.Context, token string,
) (domain.Session, bool) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Bool(1)
}

func (m *MockGateway) SignOut(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *MockGateway) CreateOrder(
	ctx context.Context, userID string, o domain.Order,
) error {
	return m.Called(ctx, userID, o).Error(0)
}

func (m *MockGateway) ListOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *MockGateway) ListReviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *MockGateway) CreateReview(
	ctx context.Context, token string, r domain.Review,
) (domain.Review, error) {
	args := m.Called(ctx, token, r)
	return args.Get(0).(domain.Review), args.Error(1)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderPlaced(
	ctx context.Context, userID string, o domain.Order,
) error {
	return m.Called(ctx, userID, o).Error(0)
}

func testOrder() domain.Order {
	items := []domain.CartItem{{
		Key: "1-M", Size: "M", Quantity: 1,
		Product: domain.Product{ProductID: "1", Price: decimal.RequireFromString("89.00")},
	}}
	return domain.NewOrder("o1", time.Now(), items)
}

func TestRegister(t *testing.T) {
	t.Run("NormalizesAndDelegates", func(t *testing.T) {
		gw := &MockGateway{}
		s := New(gw, nil)
		want := domain.Credentials{
			Name: "testName", Email: "user@example.com", Password: "secret1",
		}
		sess := domain.Session{Token: "tok", User: domain.User{UserID: "u1"}}
		gw.On("CreateAccount", mock.Anything, want).Return(sess, nil).Once()

		got, err := s.Register(t.Context(), domain.Credentials{
			Name: "  testName ", Email: "  User@Example.com ", Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, sess, got)
		gw.AssertExpectations(t)
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name  string
			creds domain.Credentials
			want  error
		}{
			{"NoName", domain.Credentials{Email: "a@b.co", Password: "secret1"}, domain.ErrValidation},
			{"NoEmail", domain.Credentials{Name: "n", Password: "secret1"}, domain.ErrValidation},
			{"BadEmail", domain.Credentials{Name: "n", Email: "a@b", Password: "secret1"}, domain.ErrInvalidEmail},
			{"ShortPassword", domain.Credentials{Name: "n", Email: "a@b.co", Password: "123"}, domain.ErrValidation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				gw := &MockGateway{}
				_, err := New(gw, nil).Register(t.Context(), tt.creds)
				assert.ErrorIs(t, err, tt.want)
				gw.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("CreateAccount", mock.Anything, mock.Anything).
			Return(domain.Session{}, domain.ErrDuplicateAccount).Once()
		_, err := New(gw, nil).Register(t.Context(), domain.Credentials{
			Name: "n", Email: "a@b.co", Password: "secret1",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	})
}

func TestLogin(t *testing.T) {
	t.Run("SameIdentifier", func(t *testing.T) {
		gw := &MockGateway{}
		gw.On("Authenticate", mock.Anything, "user@example.com", "secret1").
			Return(domain.Session{Token: "tok"}, nil).Twice()
		s := New(gw, nil)

		_, err := s.Login(t.Context(), "  User@Example.com ", "secret1")
		require.NoError(t, err)
		_, err = s.Login(t.Context(), "user@example.com", "secret1")
		require.NoError(t, err)
		gw.AssertExpectations(t)
	})

	t.Run("PasswordRequired", func(t *testing.T) {
		gw := &MockGateway{}
		_, err := New(gw, nil).Login(t.Context(), "a@b.co", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSessions(t *testing.T) {
	gw := &MockGateway{}
	s := New(gw, nil)

	_, ok := s.CurrentSession(t.Context(), "")
	assert.False(t, ok)
	s.Logout(t.Context(), "")
	gw.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything)

	gw.On("CurrentSession", mock.Anything, "tok").
		Return(domain.Session{Token: "tok"}, true).Once()
	gw.On("SignOut", mock.Anything, "tok").Once()
	_, ok = s.CurrentSession(t.Context(), "tok")
	assert.True(t, ok)
	s.Logout(t.Context(), "tok")
	gw.AssertExpectations(t)
}

func TestPlaceOrder(t *testing.T) {
	t.Run("PersistsThenProduces", func(t *testing.T) {
		gw := &MockGateway{}
		prd := &MockOrderEventsProducer{}
		o := testOrder()
		gw.On("CreateOrder", mock.Anything, "u1", o).Return(nil).Once()
		prd.On("ProduceOrderPlaced", mock.Anything, "u1", o).Return(nil).Once()

		require.NoError(t, New(gw, prd).PlaceOrder(t.Context(), "u1", o))
		gw.AssertExpectations(t)
		prd.AssertExpectations(t)
	})

	t.Run("ProducerFailureIsNotFatal", func(t *testing.T) {
		gw := &MockGateway{}
		prd := &MockOrderEventsProducer{}
		gw.On("CreateOrder", mock.Anything, "u1", mock.Anything).Return(nil).Once()
		prd.On("ProduceOrderPlaced", mock.Anything, "u1", mock.Anything).
			Return(errors.New("broker down")).Once()

		assert.NoError(t, New(gw, prd).PlaceOrder(t.Context(), "u1", testOrder()))
	})

	t.Run("GatewayFailureSkipsProducer", func(t *testing.T) {
		gw := &MockGateway{}
		prd := &MockOrderEventsProducer{}
		gw.On("CreateOrder", mock.Anything, "u1", mock.Anything).
			Return(domain.ErrProvider).Once()

		err := New(gw, prd).PlaceOrder(t.Context(), "u1", testOrder())
		assert.ErrorIs(t, err, domain.ErrProvider)
		prd.AssertNotCalled(t, "ProduceOrderPlaced", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Guards", func(t *testing.T) {
		gw := &MockGateway{}
		s := New(gw, nil)
		assert.ErrorIs(t, s.PlaceOrder(t.Context(), "", testOrder()), domain.ErrNotAuthenticated)
		assert.ErrorIs(t, s.PlaceOrder(t.Context(), "u1", domain.Order{}), domain.ErrValidation)
		gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrdersAndReviews(t *testing.T) {
	gw := &MockGateway{}
	s := New(gw, nil)

	_, err := s.Orders(t.Context(), "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	gw.On("ListOrders", mock.Anything, "u1").Return([]domain.Order{testOrder()}, nil).Once()
	orders, err := s.Orders(t.Context(), "u1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	gw.On("ListReviews", mock.Anything, "1").
		Return(nil, domain.ErrConfigurationMissing).Once()
	_, err = s.Reviews(t.Context(), "1")
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestAddReview(t *testing.T) {
	t.Run("Guards", func(t *testing.T) {
		gw := &MockGateway{}
		s := New(gw, nil)

		_, err := s.AddReview(t.Context(), "", domain.Review{Comment: "x", Rating: 5})
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		_, err = s.AddReview(t.Context(), "tok", domain.Review{Comment: "  ", Rating: 5})
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = s.AddReview(t.Context(), "tok", domain.Review{Comment: "x", Rating: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)
		gw.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TrimsComment", func(t *testing.T) {
		gw := &MockGateway{}
		want := domain.Review{ProductID: "1", Comment: "great", Rating: 4}
		gw.On("CreateReview", mock.Anything, "tok", want).
			Return(domain.Review{ReviewID: "r9"}, nil).Once()

		got, err := New(gw, nil).AddReview(t.Context(), "tok", domain.Review{
			ProductID: "1", Comment: " great ", Rating: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, "r9", got.ReviewID)
	})
}
