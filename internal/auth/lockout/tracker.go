// Package lockout tracks failed login attempts per account and enforces a
// sliding lockout window. State lives in process memory only.
package lockout

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	mu          sync.Mutex
	count       int
	lastFailure time.Time
	// removed marks an entry that was deleted from the map while another
	// goroutine still holds a reference to it.
	removed bool
}

// Tracker is safe for unbounded concurrent use. Each account key gets its own
// entry with its own lock, so accounts never contend with each other.
type Tracker struct {
	entries     sync.Map // normalized email -> *entry
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewTracker(maxAttempts int, window time.Duration) *Tracker {
	return &Tracker{
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// IsLocked reports whether the account is currently locked and, if so, how
// long until the lock expires. Entries whose window has elapsed are removed
// as a side effect (lazy expiry).
func (t *Tracker) IsLocked(email string) (bool, time.Duration) {
	v, ok := t.entries.Load(email)
	if !ok {
		return false, 0
	}

	e := v.(*entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return false, 0
	}

	elapsed := t.now().Sub(e.lastFailure)
	if elapsed >= t.window {
		e.removed = true
		t.entries.Delete(email)
		return false, 0
	}

	if e.count >= t.maxAttempts {
		return true, t.window - elapsed
	}
	return false, 0
}

// RecordFailure counts a failed attempt, creating the entry on first failure.
// Concurrent calls for the same key never lose an increment.
func (t *Tracker) RecordFailure(email string) {
	for {
		v, _ := t.entries.LoadOrStore(email, &entry{})
		e := v.(*entry)

		e.mu.Lock()
		if e.removed {
			// Lost a race with Clear or lazy expiry; retry against a
			// fresh entry.
			e.mu.Unlock()
			continue
		}
		e.count++
		e.lastFailure = t.now()
		e.mu.Unlock()
		return
	}
}

// Clear removes any tracked state for the account. Safe to call when absent.
func (t *Tracker) Clear(email string) {
	v, ok := t.entries.Load(email)
	if !ok {
		return
	}

	e := v.(*entry)
	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	t.entries.Delete(email)
}

// Reap removes every entry whose window has elapsed. Lazy expiry already keeps
// checked accounts bounded; Reap bounds memory for keys that are never checked
// again, e.g. an attacker fanning out over many email strings.
func (t *Tracker) Reap() {
	now := t.now()
	t.entries.Range(func(key, v any) bool {
		e := v.(*entry)
		e.mu.Lock()
		if !e.removed && now.Sub(e.lastFailure) >= t.window {
			e.removed = true
			t.entries.Delete(key)
		}
		e.mu.Unlock()
		return true
	})
}

// StartReaper sweeps expired entries every interval until ctx is cancelled.
func (t *Tracker) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.Reap()
			}
		}
	}()
}
