// Package memstorage is the local-only gateway: accounts, orders and reviews
// live in process memory and disappear on restart.
package memstorage

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var _ port.Gateway = (*Gateway)(nil)

type account struct {
	user         domain.User
	passwordHash []byte
}

type Gateway struct {
	sessions session.Manager
	limiter  *session.Limiter
	now      func() time.Time

	mu       sync.RWMutex
	accounts map[string]account // by normalized email
	byID     map[string]string  // user id -> email
	orders   map[string][]domain.Order
	reviews  []domain.Review
}

func New(sessions session.Manager, limiter *session.Limiter) *Gateway {
	return &Gateway{
		sessions: sessions,
		limiter:  limiter,
		now:      time.Now,
		accounts: make(map[string]account),
		byID:     make(map[string]string),
		orders:   make(map[string][]domain.Order),
	}
}

func (g *Gateway) CreateAccount(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	const op = "memstorage.Gateway.CreateAccount"

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w: %w", op, domain.ErrProvider, err)
	}

	g.mu.Lock()
	if _, ok := g.accounts[c.Email]; ok {
		g.mu.Unlock()
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrDuplicateAccount)
	}
	u := domain.User{UserID: uuid.NewString(), Name: c.Name, Email: c.Email}
	g.accounts[c.Email] = account{user: u, passwordHash: hash}
	g.byID[u.UserID] = c.Email
	g.mu.Unlock()

	return g.openSession(ctx, op, u)
}

func (g *Gateway) Authenticate(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "memstorage.Gateway.Authenticate"

	if !g.limiter.Allow(email) {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrRateLimited)
	}

	g.mu.RLock()
	acc, ok := g.accounts[email]
	g.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		g.limiter.Fail(email)
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}
	g.limiter.Reset(email)

	return g.openSession(ctx, op, acc.user)
}

func (g *Gateway) openSession(
	ctx context.Context, op string, u domain.User,
) (domain.Session, error) {
	signed, err := g.sessions.Open(ctx, u.UserID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w: %w", op, domain.ErrProvider, err)
	}
	return domain.Session{Token: signed, User: u}, nil
}

func (g *Gateway) CurrentSession(
	ctx context.Context, token string,
) (domain.Session, bool) {
	u, ok := g.sessionUser(ctx, token)
	if !ok {
		return domain.Session{}, false
	}
	return domain.Session{Token: token, User: u}, true
}

func (g *Gateway) sessionUser(ctx context.Context, token string) (domain.User, bool) {
	userID, ok := g.sessions.Resolve(ctx, token)
	if !ok {
		return domain.User{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	email, ok := g.byID[userID]
	if !ok {
		return domain.User{}, false
	}
	return g.accounts[email].user, true
}

func (g *Gateway) SignOut(ctx context.Context, token string) {
	g.sessions.Close(ctx, token)
}

func (g *Gateway) CreateOrder(
	ctx context.Context, userID string, o domain.Order,
) error {
	const op = "memstorage.Gateway.CreateOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.byID[userID]; !ok {
		return fmt.Errorf("%s: %w: unknown user", op, domain.ErrProvider)
	}
	g.orders[userID] = append(g.orders[userID], o.Clone())
	return nil
}

func (g *Gateway) ListOrders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "memstorage.Gateway.ListOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	g.mu.RLock()
	stored := g.orders[userID]
	out := make([]domain.Order, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i].Clone())
	}
	g.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (g *Gateway) ListReviews(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "memstorage.Gateway.ListReviews"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var out []domain.Review
	g.mu.RLock()
	for i := len(g.reviews) - 1; i >= 0; i-- {
		if g.reviews[i].ProductID == productID {
			out = append(out, g.reviews[i])
		}
	}
	g.mu.RUnlock()

	if len(out) == 0 {
		slog.Debug("no stored reviews, using demo set",
			"op", op, "productID", productID)
		return domain.DemoReviews(productID), nil
	}

	slices.SortStableFunc(out, func(a, b domain.Review) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out, nil
}

func (g *Gateway) CreateReview(
	ctx context.Context, token string, r domain.Review,
) (domain.Review, error) {
	const op = "memstorage.Gateway.CreateReview"

	u, ok := g.sessionUser(ctx, token)
	if !ok {
		return domain.Review{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	now := g.now()
	r.ReviewID = uuid.NewString()
	r.UserName = u.Name
	r.CreatedAt = now
	r.Date = now.Format(domain.DateLayout)
	r.Demo = false

	g.mu.Lock()
	g.reviews = append(g.reviews, r)
	g.mu.Unlock()
	return r, nil
}
