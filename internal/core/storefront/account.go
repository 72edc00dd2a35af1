package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// ErrOrdersNotLoaded marks a sign-in that succeeded while the order history
// could not be read.
var ErrOrdersNotLoaded = errors.New("order history not loaded")

var errSignedIn = domain.NewValidationError("already signed in")

type AccountView string

const (
	AccountLogin    AccountView = "login"
	AccountRegister AccountView = "register"
	AccountProfile  AccountView = "profile"
	AccountOrders   AccountView = "orders"
)

type AccountState struct {
	Open    bool
	View    AccountView
	Busy    bool
	Message string
	User    *domain.User
	Orders  []domain.Order
}

// Account is the login/register/profile/orders modal. Failures stay on the
// current view with an inline message.
type Account struct {
	store   port.Store
	session *sessionRef
	delay   time.Duration

	mu      sync.Mutex
	open    bool
	view    AccountView
	busy    bool
	message string
	orders  []domain.Order
}

func newAccount(store port.Store, session *sessionRef, delay time.Duration) *Account {
	return &Account{
		store:   store,
		session: session,
		delay:   delay,
		view:    AccountLogin,
	}
}

// Open shows the profile with orders loaded when signed in, otherwise the
// initial view, which must be login or register.
func (a *Account) Open(ctx context.Context, initial AccountView) error {
	const op = "Account.Open"

	if _, ok := a.session.get(); ok {
		a.mu.Lock()
		a.open = true
		a.view = AccountProfile
		a.message = ""
		a.mu.Unlock()
		if err := a.loadOrders(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	if initial != AccountLogin && initial != AccountRegister {
		initial = AccountLogin
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open = true
	a.view = initial
	a.message = ""
	a.orders = nil
	return nil
}

func (a *Account) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open = false
	a.message = ""
}

func (a *Account) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

// Switch toggles between the login and register forms.
func (a *Account) Switch(v AccountView) {
	if v != AccountLogin && v != AccountRegister {
		return
	}
	if _, ok := a.session.get(); ok {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
	a.message = ""
}

// Register and Login are refused while a session is held; sign out first.
func (a *Account) Register(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	const op = "Account.Register"

	sess, err := a.submit(ctx, func(ctx context.Context) (domain.Session, error) {
		return a.store.Register(ctx, c)
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	a.mu.Lock()
	a.orders = []domain.Order{}
	a.mu.Unlock()
	return sess, nil
}

// Login returns the new session. When only the order history fails the
// session is still returned together with an error wrapping
// [ErrOrdersNotLoaded].
func (a *Account) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "Account.Login"

	sess, err := a.submit(ctx, func(ctx context.Context) (domain.Session, error) {
		return a.store.Login(ctx, email, password)
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := a.loadOrders(ctx); err != nil {
		return sess, fmt.Errorf("%s: %w: %w", op, ErrOrdersNotLoaded, err)
	}
	return sess, nil
}

// submit runs an authenticating call after the simulated delay and refuses
// a second submission while one is in flight.
func (a *Account) submit(
	ctx context.Context, call func(context.Context) (domain.Session, error),
) (domain.Session, error) {
	if _, ok := a.session.get(); ok {
		a.mu.Lock()
		a.message = domain.Message(errSignedIn)
		a.mu.Unlock()
		return domain.Session{}, errSignedIn
	}

	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return domain.Session{}, domain.ErrBusy
	}
	a.busy = true
	a.message = ""
	a.mu.Unlock()

	fail := func(err error) (domain.Session, error) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.busy = false
		a.message = domain.Message(err)
		return domain.Session{}, err
	}

	if err := wait(ctx, a.delay); err != nil {
		return fail(err)
	}
	sess, err := call(ctx)
	if err != nil {
		return fail(err)
	}

	a.session.set(sess)
	a.mu.Lock()
	a.busy = false
	a.view = AccountProfile
	a.mu.Unlock()
	return sess, nil
}

// ShowOrders loads the order history, most recent first.
func (a *Account) ShowOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "Account.ShowOrders"

	if _, ok := a.session.get(); !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}
	if err := a.loadOrders(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = AccountOrders
	return cloneOrders(a.orders), nil
}

func (a *Account) Back() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.view == AccountOrders {
		a.view = AccountProfile
	}
}

func (a *Account) Logout(ctx context.Context) {
	if sess, ok := a.session.get(); ok {
		a.store.Logout(ctx, sess.Token)
	}
	a.session.clear()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = AccountLogin
	a.orders = nil
	a.message = ""
}

func (a *Account) loadOrders(ctx context.Context) error {
	sess, ok := a.session.get()
	if !ok {
		return domain.ErrNotAuthenticated
	}
	orders, err := a.store.Orders(ctx, sess.User.UserID)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.message = domain.Message(err)
		return err
	}
	a.orders = orders
	return nil
}

func (a *Account) State() AccountState {
	a.mu.Lock()
	st := AccountState{
		Open:    a.open,
		View:    a.view,
		Busy:    a.busy,
		Message: a.message,
		Orders:  cloneOrders(a.orders),
	}
	a.mu.Unlock()

	if sess, ok := a.session.get(); ok {
		u := sess.User
		st.User = &u
	}
	return st
}

func cloneOrders(orders []domain.Order) []domain.Order {
	if orders == nil {
		return nil
	}
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
