// Package storage is the PostgreSQL backed gateway.
package storage

import (
	"time"

	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Gateway = (*Gateway)(nil)

type Gateway struct {
	AccountsRepository
	OrdersRepository
	ReviewsRepository
}

func NewGateway(
	db sqldb, sessions session.Manager, limiter *session.Limiter,
) Gateway {
	accounts := NewAccountsRepository(db, sessions, limiter)
	return Gateway{
		AccountsRepository: accounts,
		OrdersRepository:   NewOrdersRepository(db),
		ReviewsRepository:  NewReviewsRepository(db, accounts),
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
