// Package session opens, resolves and closes authenticated sessions on top
// of signed tokens and a [port.SessionStore].
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/token"
)

type Manager struct {
	issuer token.Issuer
	store  port.SessionStore
}

func NewManager(issuer token.Issuer, store port.SessionStore) Manager {
	return Manager{issuer, store}
}

func (m Manager) Open(ctx context.Context, userID string) (string, error) {
	const op = "Manager.Open"

	signed, err := m.issuer.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	err = m.store.SaveSession(ctx, signed, userID, m.issuer.TTL())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Resolve returns the user id of a live session. A token that verifies but
// was signed out is not live.
func (m Manager) Resolve(ctx context.Context, signed string) (string, bool) {
	const op = "Manager.Resolve"
	log := slog.With("op", op)

	sub, err := m.issuer.Subject(signed)
	if err != nil {
		log.Debug("token rejected", "err", err)
		return "", false
	}

	userID, ok, err := m.store.SessionUser(ctx, signed)
	if err != nil {
		log.Warn("failed to read session", "err", err)
		return "", false
	}
	if !ok || userID != sub {
		return "", false
	}
	return userID, true
}

func (m Manager) Close(ctx context.Context, signed string) {
	const op = "Manager.Close"
	if err := m.store.DeleteSession(ctx, signed); err != nil {
		slog.Warn("failed to delete session", "op", op, "err", err)
	}
}
