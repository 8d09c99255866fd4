// Package session holds the transient per-room detail state: the pause flag
// and the phase/pause clocks. This is UI session state keyed by room id,
// created when a detail view opens and discarded when it closes. It is never
// part of the Room record.
package session

import (
	"fmt"
	"sync"
	"time"
)

type state struct {
	paused     bool
	phaseStart time.Time
	pauseStart time.Time
}

// Snapshot is a read-only view of one room's session clocks
type Snapshot struct {
	Paused       bool
	PhaseElapsed time.Duration
	PauseElapsed time.Duration
}

// Tracker owns all open detail sessions
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*state
	now      func() time.Time
}

// NewTracker creates a tracker. A nil clock means wall-clock time.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		sessions: make(map[string]*state),
		now:      now,
	}
}

// Open starts a detail session for a room. Reopening resets the clocks.
func (t *Tracker) Open(roomID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[roomID] = &state{phaseStart: t.now()}
}

// Close discards a room's session
func (t *Tracker) Close(roomID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, roomID)
}

// Paused reports the pause flag; rooms without a session are never paused
func (t *Tracker) Paused(roomID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[roomID]
	return ok && s.paused
}

// Pause freezes a room's session. Returns false when there is no open
// session or the room is already paused.
func (t *Tracker) Pause(roomID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[roomID]
	if !ok || s.paused {
		return false
	}
	s.paused = true
	s.pauseStart = t.now()
	return true
}

// Resume lifts the pause. The phase clock keeps running through a pause, so
// resuming leaves it untouched.
func (t *Tracker) Resume(roomID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[roomID]
	if !ok || !s.paused {
		return false
	}
	s.paused = false
	return true
}

// ResetPhaseClock restarts the phase timer. Callers invoke this only after a
// phase transition actually happened.
func (t *Tracker) ResetPhaseClock(roomID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[roomID]; ok {
		s.phaseStart = t.now()
	}
}

// Get returns the clocks for an open session
func (t *Tracker) Get(roomID string) (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[roomID]
	if !ok {
		return Snapshot{}, false
	}
	now := t.now()
	snap := Snapshot{
		Paused:       s.paused,
		PhaseElapsed: now.Sub(s.phaseStart),
	}
	if s.paused {
		snap.PauseElapsed = now.Sub(s.pauseStart)
	}
	return snap, true
}

// FormatElapsed renders a duration as the dashboard does, MM:SS
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
