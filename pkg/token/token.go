// Package token issues and verifies signed session tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrEmptyKey     = errors.New("signing key is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type claims struct {
	jwt.RegisteredClaims
}

type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(key string, ttl time.Duration) (Issuer, error) {
	const op = "token.NewIssuer"
	if key == "" {
		return Issuer{}, fmt.Errorf("%s: %w", op, ErrEmptyKey)
	}
	return Issuer{key: []byte(key), ttl: ttl, now: time.Now}, nil
}

func (i Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a token whose subject is userID.
func (i Issuer) Issue(userID string) (string, error) {
	const op = "Issuer.Issue"

	now := i.now()
	c := claims{jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Subject verifies signature and expiry and returns the user id.
func (i Issuer) Subject(signed string) (string, error) {
	const op = "Issuer.Subject"

	var c claims
	_, err := jwt.ParseWithClaims(
		signed, &c,
		func(t *jwt.Token) (any, error) { return i.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return c.Subject, nil
}
