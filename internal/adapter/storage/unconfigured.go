package storage

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Gateway = Unconfigured{}

// Unconfigured is selected when the backend endpoint or key is absent.
// Every call fails fast with [domain.ErrConfigurationMissing].
type Unconfigured struct{}

func (Unconfigured) CreateAccount(
	context.Context, domain.Credentials,
) (domain.Session, error) {
	return domain.Session{}, missing("Unconfigured.CreateAccount")
}

func (Unconfigured) Authenticate(
	context.Context, string, string,
) (domain.Session, error) {
	return domain.Session{}, missing("Unconfigured.Authenticate")
}

func (Unconfigured) CurrentSession(
	context.Context, string,
) (domain.Session, bool) {
	return domain.Session{}, false
}

func (Unconfigured) SignOut(context.Context, string) {}

func (Unconfigured) CreateOrder(context.Context, string, domain.Order) error {
	return missing("Unconfigured.CreateOrder")
}

func (Unconfigured) ListOrders(context.Context, string) ([]domain.Order, error) {
	return nil, missing("Unconfigured.ListOrders")
}

func (Unconfigured) ListReviews(context.Context, string) ([]domain.Review, error) {
	return nil, missing("Unconfigured.ListReviews")
}

func (Unconfigured) CreateReview(
	context.Context, string, domain.Review,
) (domain.Review, error) {
	return domain.Review{}, missing("Unconfigured.CreateReview")
}

func missing(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrConfigurationMissing)
}
