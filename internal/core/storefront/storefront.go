// Package storefront holds the per-client state of the shop: what is being
// viewed, which panels are open, and the cart, checkout, account, review and
// subscription flows. Each flow owns its state behind its own mutex;
// simulated latencies never hold a lock.
package storefront

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type Delays struct {
	Checkout   time.Duration
	Account    time.Duration
	Review     time.Duration
	CloseReset time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Checkout:   2 * time.Second,
		Account:    800 * time.Millisecond,
		Review:     600 * time.Millisecond,
		CloseReset: 300 * time.Millisecond,
	}
}

type View string

const (
	ViewHome     View = "home"
	ViewCategory View = "category"
	ViewProduct  View = "product"
)

// Sizes offered for every product.
var Sizes = []string{"PP", "P", "M", "G", "GG"}

// sessionRef is the session shared by the flows. Only the account flow and
// Restore write it.
type sessionRef struct {
	mu   sync.RWMutex
	sess domain.Session
	ok   bool
}

func (r *sessionRef) get() (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sess, r.ok
}

func (r *sessionRef) set(s domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sess, r.ok = s, true
}

func (r *sessionRef) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sess, r.ok = domain.Session{}, false
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Storefront struct {
	catalog port.Catalog
	store   port.Store
	session *sessionRef

	Cart         *Cart
	Checkout     *Checkout
	Account      *Account
	Reviews      *Reviews
	Subscription *Subscription

	mu       sync.Mutex
	view     View
	category string
	product  *domain.Product
	info     string
}

func New(catalog port.Catalog, store port.Store, delays Delays) *Storefront {
	sess := &sessionRef{}
	cart := NewCart()
	return &Storefront{
		catalog:      catalog,
		store:        store,
		session:      sess,
		Cart:         cart,
		Checkout:     newCheckout(cart, store, sess, delays),
		Account:      newAccount(store, sess, delays.Account),
		Reviews:      newReviews(store, sess, delays.Review),
		Subscription: newSubscription(delays),
		view:         ViewHome,
	}
}

// Restore re-derives the session from a backend token, typically on the
// first request of a returning client.
func (s *Storefront) Restore(ctx context.Context, token string) bool {
	sess, ok := s.store.CurrentSession(ctx, token)
	if !ok {
		s.session.clear()
		return false
	}
	s.session.set(sess)
	return true
}

func (s *Storefront) Session() (domain.Session, bool) {
	return s.session.get()
}

func (s *Storefront) Home() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewHome
	s.category = ""
	s.product = nil
}

// ShowCategory lists the category, or the whole catalog when nothing
// matches it.
func (s *Storefront) ShowCategory(name string) []domain.Product {
	ps := s.catalog.ProductsByCategory(name)
	if len(ps) == 0 {
		ps = s.catalog.Products()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewCategory
	s.category = name
	s.product = nil
	return ps
}

// ShowProduct selects the product and loads its reviews. A review load
// failure is kept inline by the review flow and does not fail the view.
func (s *Storefront) ShowProduct(ctx context.Context, id string) (domain.Product, error) {
	const op = "Storefront.ShowProduct"

	p, ok := s.catalog.Product(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	s.mu.Lock()
	s.view = ViewProduct
	s.product = &p
	s.mu.Unlock()

	_ = s.Reviews.Load(ctx, p.ProductID)
	return p, nil
}

// AddToCart adds the selected product in size and opens the cart panel.
func (s *Storefront) AddToCart(size string) error {
	const op = "Storefront.AddToCart"

	s.mu.Lock()
	p := s.product
	s.mu.Unlock()

	if p == nil {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("no product selected"))
	}
	if size != "" && !slices.Contains(Sizes, size) {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("unknown size"))
	}
	if err := s.Cart.Add(*p, size); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storefront) OpenInfo(key string) Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = key
	return InfoFor(key)
}

func (s *Storefront) CloseInfo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = ""
}

type State struct {
	View         View
	Category     string
	Product      *domain.Product
	Info         string
	CartOpen     bool
	CartCount    int
	AccountOpen  bool
	Subscription bool
	User         *domain.User
}

func (s *Storefront) State() State {
	s.mu.Lock()
	st := State{
		View:     s.view,
		Category: s.category,
		Info:     s.info,
	}
	if s.product != nil {
		p := *s.product
		st.Product = &p
	}
	s.mu.Unlock()

	st.CartOpen = s.Cart.IsOpen()
	st.CartCount = s.Cart.Count()
	st.AccountOpen = s.Account.IsOpen()
	st.Subscription = s.Subscription.IsOpen()
	if sess, ok := s.session.get(); ok {
		u := sess.User
		st.User = &u
	}
	return st
}
