package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

type AccountsRepository struct {
	sqldb    sqldb
	sessions session.Manager
	limiter  *session.Limiter
}

func NewAccountsRepository(
	sqldb sqldb, sessions session.Manager, limiter *session.Limiter,
) AccountsRepository {
	return AccountsRepository{sqldb, sessions, limiter}
}

func (r AccountsRepository) CreateAccount(
	ctx context.Context, c domain.Credentials,
) (domain.Session, error) {
	const op = "AccountsRepository.CreateAccount"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, providerErr(op, err)
	}

	u := domain.User{UserID: uuid.NewString(), Name: c.Name, Email: c.Email}

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);`

	_, err = r.sqldb.ExecContext(ctx, query,
		u.UserID, u.Name, u.Email, string(hash), nowUTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrDuplicateAccount)
		}
		return domain.Session{}, providerErr(op, err)
	}

	return r.openSession(ctx, op, u)
}

func (r AccountsRepository) Authenticate(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "AccountsRepository.Authenticate"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if !r.limiter.Allow(email) {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrRateLimited)
	}

	query := `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1;`

	var (
		u    domain.User
		hash string
	)
	err := r.sqldb.QueryRowContext(ctx, query, email).Scan(
		&u.UserID, &u.Name, &u.Email, &hash,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, providerErr(op, err)
	}

	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		r.limiter.Fail(email)
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}
	r.limiter.Reset(email)

	return r.openSession(ctx, op, u)
}

func (r AccountsRepository) openSession(
	ctx context.Context, op string, u domain.User,
) (domain.Session, error) {
	signed, err := r.sessions.Open(ctx, u.UserID)
	if err != nil {
		return domain.Session{}, providerErr(op, err)
	}
	return domain.Session{Token: signed, User: u}, nil
}

func (r AccountsRepository) CurrentSession(
	ctx context.Context, token string,
) (domain.Session, bool) {
	u, ok := r.sessionUser(ctx, token)
	if !ok {
		return domain.Session{}, false
	}
	return domain.Session{Token: token, User: u}, true
}

func (r AccountsRepository) sessionUser(
	ctx context.Context, token string,
) (domain.User, bool) {
	userID, ok := r.sessions.Resolve(ctx, token)
	if !ok {
		return domain.User{}, false
	}
	u, err := r.readUser(ctx, userID)
	if err != nil {
		return domain.User{}, false
	}
	return u, true
}

func (r AccountsRepository) readUser(
	ctx context.Context, userID string,
) (domain.User, error) {
	const op = "AccountsRepository.readUser"

	query := `SELECT id, name, email FROM users WHERE id = $1;`

	var u domain.User
	err := r.sqldb.QueryRowContext(ctx, query, userID).Scan(
		&u.UserID, &u.Name, &u.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.User{}, providerErr(op, err)
	}
	return u, nil
}

func (r AccountsRepository) SignOut(ctx context.Context, token string) {
	r.sessions.Close(ctx, token)
}
