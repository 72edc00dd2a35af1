package port

import (
	"context"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type Catalog interface {
	Products() []domain.Product
	Categories() []domain.Category
	Product(id string) (domain.Product, bool)
	ProductsByCategory(category string) []domain.Product
	NewArrivals() []domain.Product
	Bestsellers() []domain.Product
}

type Accounts interface {
	CreateAccount(context.Context, domain.Credentials) (domain.Session, error)
	Authenticate(ctx context.Context, email, password string) (domain.Session, error)
	// CurrentSession never fails; false means logged out.
	CurrentSession(ctx context.Context, token string) (domain.Session, bool)
	SignOut(ctx context.Context, token string)
}

type Orders interface {
	CreateOrder(ctx context.Context, userID string, o domain.Order) error
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

type Reviews interface {
	// ListReviews falls back to the demo set when nothing is stored.
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	CreateReview(ctx context.Context, token string, r domain.Review) (domain.Review, error)
}

// A Gateway is the single persistence boundary selected at start-up.
type Gateway interface {
	Accounts
	Orders
	Reviews
}

type SessionStore interface {
	SaveSession(ctx context.Context, token, userID string, ttl time.Duration) error
	SessionUser(ctx context.Context, token string) (userID string, ok bool, err error)
	DeleteSession(ctx context.Context, token string) error
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(ctx context.Context, userID string, o domain.Order) error
}

// Store is what the storefront flows need from the core service.
type Store interface {
	Register(ctx context.Context, c domain.Credentials) (domain.Session, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	CurrentSession(ctx context.Context, token string) (domain.Session, bool)
	Logout(ctx context.Context, token string)
	PlaceOrder(ctx context.Context, userID string, o domain.Order) error
	Orders(ctx context.Context, userID string) ([]domain.Order, error)
	Reviews(ctx context.Context, productID string) ([]domain.Review, error)
	AddReview(ctx context.Context, token string, r domain.Review) (domain.Review, error)
}
