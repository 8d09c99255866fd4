package workflow

import (
	"time"

	"or-control-backend/internal/models"
)

// Preconditions carries the transient UI conditions the caller layers over a
// room. Pause lives in the detail session, never on the Room record itself.
type Preconditions struct {
	Paused bool
}

// AdjustDirection selects which way an end-time adjustment moves
type AdjustDirection int

const (
	Increase AdjustDirection = 1
	Decrease AdjustDirection = -1
)

// endTimeStep is the granularity of all estimated end time adjustments
const endTimeStep = 15 * time.Minute

// InteractionBlocked reports whether phase and end-time edits are currently
// gated off for a room: while paused, or once a locked room has reached the
// terminal phase and is considered fully closed out. Emergency and lock
// toggles remain available as the only escape hatches.
func InteractionBlocked(r models.Room, pre Preconditions) bool {
	return pre.Paused || (r.IsLocked && r.CurrentStepIndex == StepReady)
}

// Advance moves a room to the next phase in the cycle. The returned bool
// reports whether the phase actually changed, so the caller knows when to
// reset its phase clock. Every rejection is a silent no-op: these are
// permission gates, not faults.
func Advance(r models.Room, pre Preconditions) (models.Room, bool) {
	if InteractionBlocked(r, pre) {
		return r, false
	}
	next := (r.CurrentStepIndex + 1) % StepCount
	if r.IsLocked && next == 0 {
		// locked rooms never wrap back to the cycle start
		return r, false
	}
	r.CurrentStepIndex = next
	return r, true
}

// SetStep jumps a room directly to an arbitrary phase. Locked rooms may only
// move strictly forward and never back to phase 0. Out-of-range targets are
// rejected.
func SetStep(r models.Room, target int, pre Preconditions) (models.Room, bool) {
	if target < 0 || target >= StepCount {
		return r, false
	}
	if InteractionBlocked(r, pre) {
		return r, false
	}
	if r.IsLocked && (target <= r.CurrentStepIndex || target == 0) {
		return r, false
	}
	r.CurrentStepIndex = target
	return r, true
}

// ToggleEmergency flips the emergency override. Always permitted: emergency
// is an alert signal layered over the phase, not a workflow step.
func ToggleEmergency(r models.Room) models.Room {
	r.IsEmergency = !r.IsEmergency
	return r
}

// ToggleLock flips the forward-only lock. Always permitted.
func ToggleLock(r models.Room) models.Room {
	r.IsLocked = !r.IsLocked
	return r
}

// SetEndTime replaces the estimated end time without any business rule.
// A nil value clears it. Used by external pickers; the +/- controls go
// through AdjustEndTime instead.
func SetEndTime(r models.Room, t *time.Time) models.Room {
	if t == nil {
		r.EstimatedEndTime = nil
		return r
	}
	v := *t
	r.EstimatedEndTime = &v
	return r
}

// AdjustEndTime applies the 15-minute +/- rule to the estimated end time.
//
// Increase on an unset end time starts from now rounded up to the next
// quarter hour; otherwise it adds 15 minutes. Decrease is rejected when the
// end time is unset or when the result would fall before now. Both directions
// are rejected while interactions are blocked.
func AdjustEndTime(r models.Room, dir AdjustDirection, pre Preconditions, now time.Time) (models.Room, bool) {
	if InteractionBlocked(r, pre) {
		return r, false
	}

	switch {
	case dir >= Increase:
		var next time.Time
		if r.EstimatedEndTime == nil {
			next = RoundUpToQuarterHour(now)
		} else {
			next = r.EstimatedEndTime.Add(endTimeStep)
		}
		r.EstimatedEndTime = &next
		return r, true

	default:
		if r.EstimatedEndTime == nil {
			return r, false
		}
		next := r.EstimatedEndTime.Add(-endTimeStep)
		if next.Before(now) {
			// the end time may never be moved into the past
			return r, false
		}
		r.EstimatedEndTime = &next
		return r, true
	}
}

// RoundUpToQuarterHour truncates seconds and rounds the minute up to the next
// quarter-hour boundary. A time already on a boundary is only truncated.
func RoundUpToQuarterHour(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	if rem := t.Minute() % 15; rem != 0 {
		t = t.Add(time.Duration(15-rem) * time.Minute)
	}
	return t
}
