package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niksmo/storefront/internal/core/domain"
)

var errUnknownStatus = errors.New("unknown order status")

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

func isUndefinedTable(err error) bool {
	return pgCode(err) == pgerrcode.UndefinedTable
}

// providerErr tags err as a backend failure so flows show the generic
// provider message.
func providerErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrProvider, err)
}
