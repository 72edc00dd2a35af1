package session

import (
	"sync"
	"time"
)

// A Limiter counts failed sign-in attempts per key in a fixed window.
type Limiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string]window
	now      func() time.Time
}

type window struct {
	start time.Time
	count int
}

func NewLimiter(maxFailures int, w time.Duration) *Limiter {
	return &Limiter{
		max:      maxFailures,
		window:   w,
		attempts: make(map[string]window),
		now:      time.Now,
	}
}

// Allow reports whether key may try again.
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.max <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	w, ok := l.attempts[key]
	if !ok {
		return true
	}
	if l.now().Sub(w.start) >= l.window {
		delete(l.attempts, key)
		return true
	}
	return w.count < l.max
}

func (l *Limiter) Fail(key string) {
	if l == nil || l.max <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	w, ok := l.attempts[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = window{start: now}
	}
	w.count++
	l.attempts[key] = w
}

func (l *Limiter) Reset(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}
