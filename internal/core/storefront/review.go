package storefront

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type ReviewsState struct {
	ProductID string
	Reviews   []domain.Review
	Rating    int
	Busy      bool
	Message   string
	CanSubmit bool
}

// Reviews is the review list and form of the product being viewed. A
// submitted review is appended locally and the list is not fetched again;
// the local list may differ from the stored one until the next Load.
type Reviews struct {
	store   port.Store
	session *sessionRef
	delay   time.Duration

	mu        sync.Mutex
	productID string
	list      []domain.Review
	rating    int
	busy      bool
	message   string
}

func newReviews(store port.Store, session *sessionRef, delay time.Duration) *Reviews {
	return &Reviews{
		store:   store,
		session: session,
		delay:   delay,
		rating:  domain.DefaultRating,
	}
}

func (r *Reviews) Load(ctx context.Context, productID string) error {
	const op = "Reviews.Load"

	r.mu.Lock()
	r.productID = productID
	r.list = nil
	r.rating = domain.DefaultRating
	r.message = ""
	r.mu.Unlock()

	list, err := r.store.Reviews(ctx, productID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.productID != productID {
		return nil
	}
	if err != nil {
		r.message = domain.Message(err)
		return fmt.Errorf("%s: %w", op, err)
	}
	r.list = list
	return nil
}

func (r *Reviews) SetRating(rating int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rating = domain.ClampRating(rating)
}

func (r *Reviews) StepRating(delta int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rating = domain.ClampRating(r.rating + delta)
	return r.rating
}

// CanSubmit reports whether to show the form rather than a sign-in prompt.
func (r *Reviews) CanSubmit() bool {
	_, ok := r.session.get()
	return ok
}

func (r *Reviews) Submit(ctx context.Context, comment string) (domain.Review, error) {
	const op = "Reviews.Submit"

	sess, ok := r.session.get()
	if !ok {
		r.setMessage(domain.ErrNotAuthenticated)
		return domain.Review{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		err := domain.NewValidationError("comment is required")
		r.setMessage(err)
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return domain.Review{}, fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	if r.productID == "" {
		r.mu.Unlock()
		return domain.Review{}, fmt.Errorf(
			"%s: %w", op, domain.NewValidationError("no product selected"),
		)
	}
	r.busy = true
	r.message = ""
	productID, rating := r.productID, r.rating
	r.mu.Unlock()

	fail := func(err error) (domain.Review, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.busy = false
		r.message = domain.Message(err)
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := wait(ctx, r.delay); err != nil {
		return fail(err)
	}
	created, err := r.store.AddReview(ctx, sess.Token, domain.Review{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		return fail(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
	if r.productID == productID {
		r.list = append(r.list, created)
		r.rating = domain.DefaultRating
	}
	return created, nil
}

func (r *Reviews) setMessage(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = domain.Message(err)
}

func (r *Reviews) State() ReviewsState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ReviewsState{
		ProductID: r.productID,
		Reviews:   append([]domain.Review(nil), r.list...),
		Rating:    r.rating,
		Busy:      r.busy,
		Message:   r.message,
		CanSubmit: r.CanSubmit(),
	}
}
