// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements the login attempt limiter: a fixed-window
// counter of FAILED attempts keyed by source address.
//
// Only failures count toward the limit; a successful login inside a window
// never contributes. That is why the limiter exposes separate Blocked and
// Fail operations instead of a single Allow: the caller reports a failure
// only after the authentication outcome is known.
//
// This is the one piece of intentionally shared, concurrently mutated
// in-process state in the portal; a single mutex serializes access.
package ratelimit

import (
	"sync"
	"time"
)

// window is one source's fixed counting window.
type window struct {
	start    time.Time
	failures int
}

// Limiter counts failed attempts per key within a fixed window.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	limit    int
	interval time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// New constructs a Limiter allowing up to limit failures per key within each
// interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

// Blocked reports whether the key has exhausted its failure budget for the
// current window. Stale windows are discarded on access, so an idle key's
// budget resets without a background sweeper.
func (l *Limiter) Blocked(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok {
		return false
	}

	if l.now().Sub(w.start) >= l.interval {
		delete(l.windows, key)
		return false
	}

	return w.failures >= l.limit
}

// Fail records one failed attempt for the key, starting a new window if the
// previous one has elapsed.
func (l *Limiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || l.now().Sub(w.start) >= l.interval {
		l.windows[key] = &window{start: l.now(), failures: 1}
		return
	}

	w.failures++
}
