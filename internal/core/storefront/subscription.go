package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type PlanID string

const (
	PlanSeed   PlanID = "seed"
	PlanRoot   PlanID = "root"
	PlanForest PlanID = "forest"
)

type Plan struct {
	ID    PlanID
	Name  string
	Price decimal.Decimal
	Trees int
}

var plans = []Plan{
	{PlanSeed, "Semente", decimal.RequireFromString("19.90"), 5},
	{PlanRoot, "Raiz", decimal.RequireFromString("39.90"), 12},
	{PlanForest, "Floresta", decimal.RequireFromString("89.90"), 30},
}

// Plans lists the monthly tree-planting plans, cheapest first.
func Plans() []Plan {
	return append([]Plan(nil), plans...)
}

func planByID(id PlanID) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

type SubscriptionStep string

const (
	SubscriptionSelect  SubscriptionStep = "select"
	SubscriptionPayment SubscriptionStep = "payment"
	SubscriptionSuccess SubscriptionStep = "success"
)

type SubscriptionState struct {
	Open       bool
	Step       SubscriptionStep
	Plan       Plan
	Processing bool
}

// Subscription is the tree-planting plan modal. Nothing is persisted.
type Subscription struct {
	delays Delays

	mu         sync.Mutex
	open       bool
	step       SubscriptionStep
	plan       PlanID
	processing bool
	epoch      uint64
}

func newSubscription(delays Delays) *Subscription {
	return &Subscription{
		delays: delays,
		step:   SubscriptionSelect,
		plan:   PlanRoot,
	}
}

func (s *Subscription) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *Subscription) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Subscription) Select(id PlanID) error {
	const op = "Subscription.Select"

	if _, ok := planByID(id); !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	s.plan = id
	return nil
}

func (s *Subscription) Continue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == SubscriptionSelect {
		s.step = SubscriptionPayment
	}
}

func (s *Subscription) Pay(ctx context.Context, form PaymentForm) error {
	const op = "Subscription.Pay"

	if err := form.validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	if s.step != SubscriptionPayment {
		s.mu.Unlock()
		return fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("no plan selected"),
		)
	}
	s.processing = true
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	err := wait(ctx, s.delays.Checkout)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.processing = false
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.step = SubscriptionSuccess
	return nil
}

// Close hides the modal and resets it to the default plan after the close
// delay.
func (s *Subscription) Close() {
	s.mu.Lock()
	s.open = false
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	reset := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch != epoch {
			return
		}
		s.step = SubscriptionSelect
		s.plan = PlanRoot
		s.processing = false
	}
	if s.delays.CloseReset <= 0 {
		reset()
		return
	}
	time.AfterFunc(s.delays.CloseReset, reset)
}

func (s *Subscription) State() SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := planByID(s.plan)
	return SubscriptionState{
		Open:       s.open,
		Step:       s.step,
		Plan:       p,
		Processing: s.processing,
	}
}
