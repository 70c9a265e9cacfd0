// Package ratelimit implements a process-local fixed-window counter keyed
// by client origin. Counters live in memory only: they are lost on restart
// and are not shared between instances, so under horizontal scaling the
// limiter is advisory unless backed by a shared store. It gates the rate of
// calls into the service layer and has no relationship to request outcomes.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of a rate limit check.
type Result struct {
	OK        bool
	Remaining int
	ResetAt   time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window counter store. Construct one per process (or
// per test) with New; there is no package-level state.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// New returns an empty Limiter.
func New() *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Check records one call for key and reports whether it is within limit
// calls per windowDur. On first use of a key, or once the current window
// has elapsed, the counter resets before incrementing. An empty key is
// always allowed: missing client identification fails open because this is
// a defense-in-depth layer, not the primary authorization mechanism.
func (l *Limiter) Check(key string, limit int, windowDur time.Duration) Result {
	if key == "" {
		return Result{OK: true, Remaining: limit}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{count: 0, resetAt: now.Add(windowDur)}
		l.windows[key] = w
	}

	if w.count >= limit {
		return Result{OK: false, Remaining: 0, ResetAt: w.resetAt}
	}
	w.count++
	return Result{OK: true, Remaining: limit - w.count, ResetAt: w.resetAt}
}

// Cleanup drops windows that have elapsed. Callers run this periodically to
// keep the map from growing with one-off keys.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
