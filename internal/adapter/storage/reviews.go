package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
)

type ReviewsRepository struct {
	sqldb    sqldb
	accounts AccountsRepository
}

func NewReviewsRepository(
	sqldb sqldb, accounts AccountsRepository,
) ReviewsRepository {
	return ReviewsRepository{sqldb, accounts}
}

// ListReviews returns stored reviews newest first. An empty result and a
// missing table both yield the demo set; the missing table is logged as a
// warning so operators can tell them apart.
func (r ReviewsRepository) ListReviews(
	ctx context.Context, productID string,
) (reviews []domain.Review, err error) {
	const op = "ReviewsRepository.ListReviews"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, product_id, user_name, rating, comment, date, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query, productID)
	if err != nil {
		if isUndefinedTable(err) {
			log.Warn("reviews table is missing, using demo set")
			return domain.DemoReviews(productID), nil
		}
		return nil, providerErr(op, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = providerErr(op, closeErr)
		}
	}()

	for rows.Next() {
		var (
			v         domain.Review
			createdAt time.Time
		)
		err := rows.Scan(
			&v.ReviewID, &v.ProductID, &v.UserName, &v.Rating,
			&v.Comment, &v.Date, &createdAt,
		)
		if err != nil {
			return nil, providerErr(op, err)
		}
		v.CreatedAt = createdAt
		reviews = append(reviews, v)
	}
	if err := rows.Err(); err != nil {
		return nil, providerErr(op, err)
	}

	if len(reviews) == 0 {
		log.Debug("no stored reviews, using demo set", "productID", productID)
		return domain.DemoReviews(productID), nil
	}
	return reviews, nil
}

// CreateReview attributes the review to the session owner.
func (r ReviewsRepository) CreateReview(
	ctx context.Context, token string, v domain.Review,
) (domain.Review, error) {
	const op = "ReviewsRepository.CreateReview"

	if err := ctx.Err(); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	u, ok := r.accounts.sessionUser(ctx, token)
	if !ok {
		return domain.Review{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	now := nowUTC()
	v.ReviewID = uuid.NewString()
	v.UserName = u.Name
	v.CreatedAt = now
	v.Date = now.Format(domain.DateLayout)
	v.Demo = false

	query := `
		INSERT INTO reviews (
			id, product_id, user_id, user_name, rating, comment, date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err := r.sqldb.ExecContext(ctx, query,
		v.ReviewID, v.ProductID, u.UserID, v.UserName,
		v.Rating, v.Comment, v.Date, v.CreatedAt,
	)
	if err != nil {
		return domain.Review{}, providerErr(op, err)
	}
	return v, nil
}
