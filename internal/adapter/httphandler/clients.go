package httphandler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/storefront"
)

const ClientCookie = "sf_client"

type client struct {
	sf       *storefront.Storefront
	lastSeen time.Time
}

// Clients keeps one [storefront.Storefront] per browser, keyed by the
// client cookie. Idle clients are dropped by Sweep.
type Clients struct {
	newFn   func() *storefront.Storefront
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	clients map[string]*client
}

func NewClients(newFn func() *storefront.Storefront, idleTTL time.Duration) *Clients {
	return &Clients{
		newFn:   newFn,
		idleTTL: idleTTL,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// Get returns the client state for id, creating a new id when id is empty
// or unknown. created reports whether a new client was made.
func (c *Clients) Get(id string) (clientID string, sf *storefront.Storefront, created bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if cl, ok := c.clients[id]; ok && id != "" {
		cl.lastSeen = now
		return id, cl.sf, false
	}

	clientID = uuid.NewString()
	cl := &client{sf: c.newFn(), lastSeen: now}
	c.clients[clientID] = cl
	return clientID, cl.sf, true
}

func (c *Clients) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// Sweep drops clients idle for longer than the idle TTL and returns how
// many were dropped.
func (c *Clients) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	deadline := c.now().Add(-c.idleTTL)
	for id, cl := range c.clients {
		if cl.lastSeen.Before(deadline) {
			delete(c.clients, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (c *Clients) Run(ctx context.Context, every time.Duration) {
	const op = "Clients.Run"
	log := slog.With("op", op)

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := c.Sweep(); n > 0 {
				log.Debug("idle clients dropped", "n", n)
			}
		}
	}
}
