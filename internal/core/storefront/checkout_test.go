package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testForm = PaymentForm{
	CardName: "TEST NAME", CardNumber: "4111 1111 1111 1111",
	Expiry: "12/30", CVV: "123",
}

// fillCart adds three units in two lines and returns the unit count.
func fillCart(t *testing.T, c *Cart) int {
	t.Helper()
	require.NoError(t, c.Add(testProduct("1", "89.00", ""), "M"))
	sale := testProduct("2", "89.00", "79.90")
	require.NoError(t, c.Add(sale, "P"))
	require.NoError(t, c.Add(sale, "P"))
	require.Equal(t, 3, c.Count())
	return c.Count()
}

func TestCheckout(t *testing.T) {
	t.Run("RequiresSession", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		before := fillCart(t, sf.Cart)

		err := sf.Checkout.Start(t.Context())
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		assert.Equal(t, StepCart, sf.Checkout.State().Step)

		_, err = sf.Checkout.Pay(t.Context(), testForm)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
		assert.Equal(t, before, sf.Cart.Count())
	})

	t.Run("PlacesOrder", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		fillCart(t, sf.Cart)
		subtotal := sf.Cart.Subtotal()

		require.NoError(t, sf.Checkout.Start(t.Context()))
		assert.Equal(t, StepPayment, sf.Checkout.State().Step)

		order, err := sf.Checkout.Pay(t.Context(), testForm)
		require.NoError(t, err)
		assert.True(t, subtotal.Equal(order.Total))
		assert.Equal(t, domain.OrderApproved, order.Status)
		assert.Len(t, order.Items, 2)

		assert.Empty(t, sf.Cart.Items())
		st := sf.Checkout.State()
		assert.Equal(t, StepSuccess, st.Step)
		assert.False(t, st.Processing)
		require.NotNil(t, st.LastOrder)
		assert.Equal(t, order.OrderID, st.LastOrder.OrderID)

		orders, err := sf.Account.ShowOrders(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, orders)
		assert.Equal(t, order.OrderID, orders[0].OrderID)
	})

	t.Run("LatestOrderFirst", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		base := time.Now()
		tick := 0
		sf.Checkout.now = func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Minute)
		}

		var last domain.Order
		for range 2 {
			fillCart(t, sf.Cart)
			require.NoError(t, sf.Checkout.Start(t.Context()))
			o, err := sf.Checkout.Pay(t.Context(), testForm)
			require.NoError(t, err)
			last = o
		}

		orders, err := sf.Account.ShowOrders(t.Context())
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, last.OrderID, orders[0].OrderID)
	})

	t.Run("OrderUnaffectedByLaterCartChanges", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		fillCart(t, sf.Cart)
		require.NoError(t, sf.Checkout.Start(t.Context()))
		order, err := sf.Checkout.Pay(t.Context(), testForm)
		require.NoError(t, err)

		require.NoError(t, sf.Cart.Add(testProduct("1", "89.00", ""), "M"))
		orders, err := sf.Account.ShowOrders(t.Context())
		require.NoError(t, err)
		assert.True(t, order.Total.Equal(orders[0].Total))
		assert.Len(t, orders[0].Items, 2)
	})

	t.Run("MissingField", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		before := fillCart(t, sf.Cart)
		require.NoError(t, sf.Checkout.Start(t.Context()))

		form := testForm
		form.CVV = " "
		_, err := sf.Checkout.Pay(t.Context(), form)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "cvv is required", sf.Checkout.State().Message)
		assert.Equal(t, before, sf.Cart.Count())
	})

	t.Run("EmptyCart", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		require.NoError(t, sf.Checkout.Start(t.Context()))

		_, err := sf.Checkout.Pay(t.Context(), testForm)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NotStarted", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		fillCart(t, sf.Cart)

		_, err := sf.Checkout.Pay(t.Context(), testForm)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		store := &MockStore{}
		sf := New(catalog.New(), store, testDelays)
		sf.session.set(domain.Session{Token: "tok", User: domain.User{UserID: "u1"}})
		before := fillCart(t, sf.Cart)

		store.On("PlaceOrder", mock.Anything, "u1", mock.Anything).
			Return(domain.ErrProvider).Once()

		require.NoError(t, sf.Checkout.Start(t.Context()))
		_, err := sf.Checkout.Pay(t.Context(), testForm)
		assert.ErrorIs(t, err, domain.ErrProvider)

		st := sf.Checkout.State()
		assert.Equal(t, StepPayment, st.Step)
		assert.False(t, st.Processing)
		assert.Equal(t, domain.ErrProvider.Error(), st.Message)
		assert.Equal(t, before, sf.Cart.Count())
	})

	t.Run("CanceledContext", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		before := fillCart(t, sf.Cart)
		require.NoError(t, sf.Checkout.Start(t.Context()))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := sf.Checkout.Pay(ctx, testForm)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, sf.Checkout.State().Processing)
		assert.Equal(t, before, sf.Cart.Count())
	})

	t.Run("CloseResets", func(t *testing.T) {
		sf, _ := newTestStorefront(t)
		registerTestUser(t, sf)
		fillCart(t, sf.Cart)
		require.NoError(t, sf.Checkout.Start(t.Context()))
		_, err := sf.Checkout.Pay(t.Context(), testForm)
		require.NoError(t, err)

		sf.Checkout.Close()
		assert.False(t, sf.Cart.IsOpen())
		assert.Eventually(t, func() bool {
			return sf.Checkout.State().Step == StepCart
		}, time.Second, time.Millisecond)
	})

	t.Run("PaymentOutlivesClose", func(t *testing.T) {
		store := &MockStore{}
		delays := testDelays
		delays.Checkout = 50 * time.Millisecond
		sf := New(catalog.New(), store, delays)
		sf.session.set(domain.Session{Token: "tok", User: domain.User{UserID: "u1"}})
		fillCart(t, sf.Cart)
		store.On("PlaceOrder", mock.Anything, "u1", mock.Anything).
			Return(nil).Once()

		require.NoError(t, sf.Checkout.Start(t.Context()))
		done := make(chan error, 1)
		go func() {
			_, err := sf.Checkout.Pay(t.Context(), testForm)
			done <- err
		}()

		assert.Eventually(t, func() bool {
			return sf.Checkout.State().Processing
		}, time.Second, time.Millisecond)
		sf.Checkout.Close()

		require.NoError(t, <-done)
		store.AssertExpectations(t)
		assert.Empty(t, sf.Cart.Items())
		assert.Eventually(t, func() bool {
			st := sf.Checkout.State()
			return st.Step == StepCart && !st.Processing
		}, time.Second, time.Millisecond)
	})

	t.Run("DoubleSubmit", func(t *testing.T) {
		store := &MockStore{}
		delays := testDelays
		delays.Checkout = 50 * time.Millisecond
		sf := New(catalog.New(), store, delays)
		sf.session.set(domain.Session{Token: "tok", User: domain.User{UserID: "u1"}})
		fillCart(t, sf.Cart)
		store.On("PlaceOrder", mock.Anything, "u1", mock.Anything).
			Return(nil).Once()

		require.NoError(t, sf.Checkout.Start(t.Context()))
		done := make(chan error, 1)
		go func() {
			_, err := sf.Checkout.Pay(t.Context(), testForm)
			done <- err
		}()
		assert.Eventually(t, func() bool {
			return sf.Checkout.State().Processing
		}, time.Second, time.Millisecond)

		_, err := sf.Checkout.Pay(t.Context(), testForm)
		assert.ErrorIs(t, err, domain.ErrBusy)
		require.NoError(t, <-done)
		store.AssertNumberOfCalls(t, "PlaceOrder", 1)
	})
}
