package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for deterministic elapsed times
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTrackerLifecycle(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.now)

	_, ok := tr.Get("1")
	assert.False(t, ok)
	assert.False(t, tr.Paused("1"))

	tr.Open("1")
	clock.advance(90 * time.Second)

	snap, ok := tr.Get("1")
	require.True(t, ok)
	assert.False(t, snap.Paused)
	assert.Equal(t, 90*time.Second, snap.PhaseElapsed)
	assert.Equal(t, time.Duration(0), snap.PauseElapsed)

	tr.Close("1")
	_, ok = tr.Get("1")
	assert.False(t, ok)
}

func TestTrackerPauseResume(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.now)

	// pausing without an open session is a no-op
	assert.False(t, tr.Pause("1"))

	tr.Open("1")
	clock.advance(time.Minute)

	require.True(t, tr.Pause("1"))
	assert.True(t, tr.Paused("1"))
	assert.False(t, tr.Pause("1"), "double pause rejected")

	clock.advance(30 * time.Second)
	snap, ok := tr.Get("1")
	require.True(t, ok)
	assert.True(t, snap.Paused)
	assert.Equal(t, 30*time.Second, snap.PauseElapsed)
	// the phase clock keeps running through the pause
	assert.Equal(t, 90*time.Second, snap.PhaseElapsed)

	require.True(t, tr.Resume("1"))
	assert.False(t, tr.Paused("1"))
	assert.False(t, tr.Resume("1"), "double resume rejected")

	snap, _ = tr.Get("1")
	assert.Equal(t, time.Duration(0), snap.PauseElapsed)
	assert.Equal(t, 90*time.Second, snap.PhaseElapsed)
}

func TestTrackerResetPhaseClock(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.now)

	tr.Open("1")
	clock.advance(5 * time.Minute)
	tr.ResetPhaseClock("1")
	clock.advance(10 * time.Second)

	snap, ok := tr.Get("1")
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, snap.PhaseElapsed)

	// resetting a room without a session does nothing
	tr.ResetPhaseClock("2")
	_, ok = tr.Get("2")
	assert.False(t, ok)
}

func TestTrackerReopenResetsClocks(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker(clock.now)

	tr.Open("1")
	clock.advance(time.Hour)
	tr.Pause("1")
	tr.Open("1")

	snap, ok := tr.Get("1")
	require.True(t, ok)
	assert.False(t, snap.Paused)
	assert.Equal(t, time.Duration(0), snap.PhaseElapsed)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:05", FormatElapsed(5*time.Second))
	assert.Equal(t, "01:30", FormatElapsed(90*time.Second))
	assert.Equal(t, "59:59", FormatElapsed(59*time.Minute+59*time.Second))
	assert.Equal(t, "90:00", FormatElapsed(90*time.Minute))
	assert.Equal(t, "00:00", FormatElapsed(-time.Second))
}
