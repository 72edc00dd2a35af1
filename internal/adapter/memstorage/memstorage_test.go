package memstorage

import (
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/token"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	iss, err := token.NewIssuer("testKey", time.Hour)
	require.NoError(t, err)
	return New(
		session.NewManager(iss, session.NewMemoryStore()),
		session.NewLimiter(3, time.Minute),
	)
}

var testCreds = domain.Credentials{
	Name: "testName", Email: "test@example.com", Password: "secret1",
}

func TestAccounts(t *testing.T) {
	t.Run("CreateAndAuthenticate", func(t *testing.T) {
		g := newTestGateway(t)
		ctx := t.Context()

		sess, err := g.CreateAccount(ctx, testCreds)
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, "testName", sess.User.Name)

		cur, ok := g.CurrentSession(ctx, sess.Token)
		require.True(t, ok)
		assert.Equal(t, sess.User, cur.User)

		sess2, err := g.Authenticate(ctx, testCreds.Email, testCreds.Password)
		require.NoError(t, err)
		assert.Equal(t, sess.User.UserID, sess2.User.UserID)
		assert.NotEqual(t, sess.Token, sess2.Token)
	})

	t.Run("Duplicate", func(t *testing.T) {
		g := newTestGateway(t)
		_, err := g.CreateAccount(t.Context(), testCreds)
		require.NoError(t, err)
		_, err = g.CreateAccount(t.Context(), testCreds)
		assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		g := newTestGateway(t)
		_, err := g.CreateAccount(t.Context(), testCreds)
		require.NoError(t, err)
		_, err = g.Authenticate(t.Context(), testCreds.Email, "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("RateLimited", func(t *testing.T) {
		g := newTestGateway(t)
		for range 3 {
			_, err := g.Authenticate(t.Context(), "nobody@example.com", "x")
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}
		_, err := g.Authenticate(t.Context(), "nobody@example.com", "x")
		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("SignOut", func(t *testing.T) {
		g := newTestGateway(t)
		sess, err := g.CreateAccount(t.Context(), testCreds)
		require.NoError(t, err)

		g.SignOut(t.Context(), sess.Token)
		_, ok := g.CurrentSession(t.Context(), sess.Token)
		assert.False(t, ok)
	})
}

func TestOrders(t *testing.T) {
	g := newTestGateway(t)
	ctx := t.Context()
	sess, err := g.CreateAccount(ctx, testCreds)
	require.NoError(t, err)
	userID := sess.User.UserID

	items := []domain.CartItem{{
		Key: "1-M", Size: "M", Quantity: 1,
		Product: domain.Product{
			ProductID: "1", Name: "testName",
			Price: decimal.RequireFromString("89.90"),
		},
	}}
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	first := domain.NewOrder("o1", base, items)
	second := domain.NewOrder("o2", base.Add(time.Hour), items)

	require.NoError(t, g.CreateOrder(ctx, userID, first))
	require.NoError(t, g.CreateOrder(ctx, userID, second))

	t.Run("MostRecentFirst", func(t *testing.T) {
		orders, err := g.ListOrders(ctx, userID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o2", orders[0].OrderID)
		assert.Equal(t, "o1", orders[1].OrderID)
	})

	t.Run("StoredCopy", func(t *testing.T) {
		orders, err := g.ListOrders(ctx, userID)
		require.NoError(t, err)
		orders[0].Items[0].Quantity = 99

		again, err := g.ListOrders(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, again[0].Items[0].Quantity)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		err := g.CreateOrder(ctx, "ghost", first)
		assert.ErrorIs(t, err, domain.ErrProvider)
	})

	t.Run("Empty", func(t *testing.T) {
		orders, err := g.ListOrders(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestReviews(t *testing.T) {
	t.Run("DemoFallback", func(t *testing.T) {
		g := newTestGateway(t)
		rs, err := g.ListReviews(t.Context(), "1")
		require.NoError(t, err)
		require.Len(t, rs, 2)
		for _, r := range rs {
			assert.True(t, r.Demo)
		}

		rs, err = g.ListReviews(t.Context(), "42")
		require.NoError(t, err)
		assert.Empty(t, rs)
	})

	t.Run("CreateAttributed", func(t *testing.T) {
		g := newTestGateway(t)
		ctx := t.Context()
		sess, err := g.CreateAccount(ctx, testCreds)
		require.NoError(t, err)

		now := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
		g.now = func() time.Time { return now }
		created, err := g.CreateReview(ctx, sess.Token, domain.Review{
			ProductID: "1", Rating: 4, Comment: "testComment", UserName: "spoof",
		})
		require.NoError(t, err)
		assert.Equal(t, "testName", created.UserName)
		assert.Equal(t, "03/02/2025", created.Date)
		assert.NotEmpty(t, created.ReviewID)

		now = now.Add(time.Minute)
		_, err = g.CreateReview(ctx, sess.Token, domain.Review{
			ProductID: "1", Rating: 5, Comment: "second",
		})
		require.NoError(t, err)

		rs, err := g.ListReviews(ctx, "1")
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "second", rs[0].Comment)
		assert.False(t, rs[0].Demo)
	})

	t.Run("NoSession", func(t *testing.T) {
		g := newTestGateway(t)
		_, err := g.CreateReview(t.Context(), "garbage", domain.Review{
			ProductID: "1", Rating: 5, Comment: "x",
		})
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}
