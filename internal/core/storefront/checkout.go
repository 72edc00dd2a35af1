package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type Step string

const (
	StepCart    Step = "cart"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

// PaymentForm is checked for presence only. Payment is simulated.
type PaymentForm struct {
	CardName   string
	CardNumber string
	Expiry     string
	CVV        string
}

func (f PaymentForm) validate() error {
	for _, field := range []struct{ name, value string }{
		{"name on card", f.CardName},
		{"card number", f.CardNumber},
		{"expiry", f.Expiry},
		{"cvv", f.CVV},
	} {
		if strings.TrimSpace(field.value) == "" {
			return domain.NewValidationError(field.name + " is required")
		}
	}
	return nil
}

type CheckoutState struct {
	Step       Step
	Processing bool
	Message    string
	LastOrder  *domain.Order
}

// Checkout drives cart -> payment -> success. Start, Pay and Close each begin
// a new epoch; a payment that outlives its epoch is persisted but its result
// is not shown.
type Checkout struct {
	cart    *Cart
	store   port.Store
	session *sessionRef
	delays  Delays
	now     func() time.Time
	newID   func() string

	mu         sync.Mutex
	step       Step
	processing bool
	message    string
	lastOrder  *domain.Order
	epoch      uint64
}

func newCheckout(
	cart *Cart, store port.Store, session *sessionRef, delays Delays,
) *Checkout {
	return &Checkout{
		cart:    cart,
		store:   store,
		session: session,
		delays:  delays,
		now:     time.Now,
		newID:   uuid.NewString,
		step:    StepCart,
	}
}

// Start moves to payment. Without a session it returns
// [domain.ErrNotAuthenticated] and the caller is expected to open the
// account flow instead.
func (c *Checkout) Start(ctx context.Context) error {
	const op = "Checkout.Start"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := c.session.get(); !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processing {
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	c.epoch++
	c.step = StepPayment
	c.message = ""
	c.cart.Open()
	return nil
}

// Pay waits the simulated processing time, stores an order built from the
// cart as it was at submission, then clears the cart.
func (c *Checkout) Pay(ctx context.Context, form PaymentForm) (domain.Order, error) {
	const op = "Checkout.Pay"
	log := slog.With("op", op)

	sess, ok := c.session.get()
	if !ok {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	if c.step != StepPayment {
		c.mu.Unlock()
		return domain.Order{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("checkout has not started"),
		)
	}
	if err := form.validate(); err != nil {
		c.message = domain.Message(err)
		c.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	items := c.cart.Items()
	if len(items) == 0 {
		err := domain.NewValidationError("cart is empty")
		c.message = domain.Message(err)
		c.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	c.processing = true
	c.message = ""
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	finish := func(err error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.epoch != epoch {
			return
		}
		c.processing = false
		if err != nil {
			c.message = domain.Message(err)
		}
	}

	if err := wait(ctx, c.delays.Checkout); err != nil {
		finish(err)
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order := domain.NewOrder(c.newID(), c.now(), items)
	if err := c.store.PlaceOrder(ctx, sess.User.UserID, order); err != nil {
		finish(err)
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	c.cart.Clear()

	c.mu.Lock()
	if c.epoch == epoch {
		c.processing = false
		c.step = StepSuccess
		o := order.Clone()
		c.lastOrder = &o
	} else {
		log.Debug("payment finished after checkout closed", "orderID", order.OrderID)
	}
	c.mu.Unlock()

	return order, nil
}

// Close hides the cart panel and, after the close delay, resets the flow to
// the cart step unless it was restarted meanwhile.
func (c *Checkout) Close() {
	c.cart.Close()

	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	reset := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.epoch != epoch {
			return
		}
		c.step = StepCart
		c.processing = false
		c.message = ""
		c.lastOrder = nil
	}

	if c.delays.CloseReset <= 0 {
		reset()
		return
	}
	time.AfterFunc(c.delays.CloseReset, reset)
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := CheckoutState{
		Step:       c.step,
		Processing: c.processing,
		Message:    c.message,
	}
	if c.lastOrder != nil {
		o := c.lastOrder.Clone()
		st.LastOrder = &o
	}
	return st
}
