package lockout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_LocksAfterMaxAttempts(t *testing.T) {
	tr := NewTracker(3, 15*time.Minute)

	locked, _ := tr.IsLocked("a@b.com")
	assert.False(t, locked, "fresh account should not be locked")

	tr.RecordFailure("a@b.com")
	tr.RecordFailure("a@b.com")
	locked, _ = tr.IsLocked("a@b.com")
	assert.False(t, locked, "below threshold should not be locked")

	tr.RecordFailure("a@b.com")
	locked, remaining := tr.IsLocked("a@b.com")
	assert.True(t, locked)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, 15*time.Minute)
}

func TestTracker_KeysAreIndependent(t *testing.T) {
	tr := NewTracker(2, 15*time.Minute)

	tr.RecordFailure("a@b.com")
	tr.RecordFailure("a@b.com")

	locked, _ := tr.IsLocked("a@b.com")
	assert.True(t, locked)
	locked, _ = tr.IsLocked("c@d.com")
	assert.False(t, locked)
}

func TestTracker_LazyExpiryUnlocks(t *testing.T) {
	tr := NewTracker(2, 15*time.Minute)

	now := time.Now()
	tr.now = func() time.Time { return now }

	tr.RecordFailure("a@b.com")
	tr.RecordFailure("a@b.com")
	locked, _ := tr.IsLocked("a@b.com")
	require.True(t, locked)

	tr.now = func() time.Time { return now.Add(15 * time.Minute) }

	locked, _ = tr.IsLocked("a@b.com")
	assert.False(t, locked, "elapsed window should unlock")

	// The stale entry was evicted, so a single new failure starts from zero.
	tr.RecordFailure("a@b.com")
	locked, _ = tr.IsLocked("a@b.com")
	assert.False(t, locked)
}

func TestTracker_ClearIsIdempotent(t *testing.T) {
	tr := NewTracker(2, 15*time.Minute)

	tr.Clear("absent@b.com")

	tr.RecordFailure("a@b.com")
	tr.RecordFailure("a@b.com")
	tr.Clear("a@b.com")
	tr.Clear("a@b.com")

	locked, _ := tr.IsLocked("a@b.com")
	assert.False(t, locked)
}

func TestTracker_ConcurrentFailuresAllCounted(t *testing.T) {
	const n = 200
	tr := NewTracker(1000, 15*time.Minute)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			tr.RecordFailure("a@b.com")
		}()
	}
	wg.Wait()

	v, ok := tr.entries.Load("a@b.com")
	require.True(t, ok)
	e := v.(*entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	assert.Equal(t, n, e.count, "no increment may be lost")
}

func TestTracker_ReapRemovesOnlyExpired(t *testing.T) {
	tr := NewTracker(5, 15*time.Minute)

	now := time.Now()
	tr.now = func() time.Time { return now }
	tr.RecordFailure("old@b.com")

	tr.now = func() time.Time { return now.Add(10 * time.Minute) }
	tr.RecordFailure("fresh@b.com")

	tr.now = func() time.Time { return now.Add(16 * time.Minute) }
	tr.Reap()

	_, ok := tr.entries.Load("old@b.com")
	assert.False(t, ok, "expired entry should be reaped")
	_, ok = tr.entries.Load("fresh@b.com")
	assert.True(t, ok, "entry inside the window should survive")
}
