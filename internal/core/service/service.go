package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Store = (*Service)(nil)

const minPasswordLen = 6

type Service struct {
	gateway        port.Gateway
	orderEventsPrd port.OrderEventsProducer
}

// New returns the core service. orderEventsPrd may be nil when no broker is
// configured.
func New(
	gateway port.Gateway,
	orderEventsPrd port.OrderEventsProducer,
) Service {
	return Service{gateway, orderEventsPrd}
}

func (s Service) Register(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	const op = "Service.Register"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Email = domain.NormalizeEmail(c.Email)

	if c.Name == "" {
		return domain.Session{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("name is required"),
		)
	}
	if err := domain.ValidateEmail(c.Email); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(c.Password) < minPasswordLen {
		return domain.Session{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError(
				fmt.Sprintf("password must have at least %d characters", minPasswordLen),
			),
		)
	}

	sess, err := s.gateway.CreateAccount(ctx, c)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s Service) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "Service.Login"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	email = domain.NormalizeEmail(email)
	if err := domain.ValidateEmail(email); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if password == "" {
		return domain.Session{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("password is required"),
		)
	}

	sess, err := s.gateway.Authenticate(ctx, email, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s Service) CurrentSession(
	ctx context.Context, token string,
) (domain.Session, bool) {
	if token == "" || ctx.Err() != nil {
		return domain.Session{}, false
	}
	return s.gateway.CurrentSession(ctx, token)
}

func (s Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.gateway.SignOut(ctx, token)
}

// PlaceOrder persists the order and then announces it. Announcement failures
// are logged only; the order is already stored.
func (s Service) PlaceOrder(
	ctx context.Context, userID string, o domain.Order,
) error {
	const op = "Service.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if userID == "" {
		return fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("cart is empty"))
	}

	if err := s.gateway.CreateOrder(ctx, userID, o); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.orderEventsPrd != nil {
		err := s.orderEventsPrd.ProduceOrderPlaced(ctx, userID, o)
		if err != nil {
			log.Error("failed to produce order event",
				"orderID", o.OrderID, "err", err)
		}
	}

	log.Info("order placed", "orderID", o.OrderID, "total", o.Total.String())
	return nil
}

func (s Service) Orders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "Service.Orders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	orders, err := s.gateway.ListOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s Service) Reviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "Service.Reviews"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews, err := s.gateway.ListReviews(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}

func (s Service) AddReview(
	ctx context.Context, token string, r domain.Review,
) (domain.Review, error) {
	const op = "Service.AddReview"

	if err := ctx.Err(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	if token == "" {
		return domain.Review{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	r.Comment = strings.TrimSpace(r.Comment)
	if r.Comment == "" {
		return domain.Review{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("comment is required"),
		)
	}
	if r.Rating < domain.MinRating || r.Rating > domain.MaxRating {
		return domain.Review{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("rating must be between 1 and 5"),
		)
	}

	created, err := s.gateway.CreateReview(ctx, token, r)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
