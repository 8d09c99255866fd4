package workflow

import (
	"testing"
	"time"

	"or-control-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(step int) models.Room {
	return models.Room{ID: "1", Name: "Sál 1", CurrentStepIndex: step}
}

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 10, hour, min, sec, 0, time.UTC)
}

func TestAdvanceCyclesThroughAllPhases(t *testing.T) {
	r := room(0)
	for i := 1; i < StepCount; i++ {
		var changed bool
		r, changed = Advance(r, Preconditions{})
		require.True(t, changed)
		assert.Equal(t, i, r.CurrentStepIndex)
	}

	// the terminal phase wraps back to the cycle start
	r, changed := Advance(r, Preconditions{})
	require.True(t, changed)
	assert.Equal(t, 0, r.CurrentStepIndex)
}

func TestAdvanceRejectedWhilePaused(t *testing.T) {
	r, changed := Advance(room(2), Preconditions{Paused: true})
	assert.False(t, changed)
	assert.Equal(t, 2, r.CurrentStepIndex)
}

func TestAdvanceLockedNeverWraps(t *testing.T) {
	r := room(StepReady)
	r.IsLocked = true

	r, changed := Advance(r, Preconditions{})
	assert.False(t, changed)
	assert.Equal(t, StepReady, r.CurrentStepIndex)
}

func TestAdvanceLockedMidCycleStillMoves(t *testing.T) {
	r := room(3)
	r.IsLocked = true

	r, changed := Advance(r, Preconditions{})
	assert.True(t, changed)
	assert.Equal(t, 4, r.CurrentStepIndex)
}

func TestSetStep(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		locked   bool
		paused   bool
		target   int
		wantStep int
		wantOK   bool
	}{
		{"jump forward", 1, false, false, 5, 5, true},
		{"jump backward unlocked", 5, false, false, 2, 2, true},
		{"jump to start unlocked", 4, false, false, 0, 0, true},
		{"locked forward allowed", 2, true, false, 4, 4, true},
		{"locked backward rejected", 4, true, false, 2, 4, false},
		{"locked same phase rejected", 3, true, false, 3, 3, false},
		{"locked never to start", 2, true, false, 0, 2, false},
		{"paused rejected", 1, false, true, 3, 1, false},
		{"negative target rejected", 1, false, false, -1, 1, false},
		{"target past end rejected", 1, false, false, StepCount, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := room(tt.start)
			r.IsLocked = tt.locked

			got, ok := SetStep(r, tt.target, Preconditions{Paused: tt.paused})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStep, got.CurrentStepIndex)
		})
	}
}

func TestTogglesOnlyFlipTheirOwnFlag(t *testing.T) {
	r := room(2)
	r.IsLocked = true

	r = ToggleEmergency(r)
	assert.True(t, r.IsEmergency)
	assert.True(t, r.IsLocked)
	assert.Equal(t, 2, r.CurrentStepIndex)

	r = ToggleEmergency(r)
	assert.False(t, r.IsEmergency)

	r = ToggleLock(r)
	assert.False(t, r.IsLocked)
	r = ToggleLock(r)
	assert.True(t, r.IsLocked)
}

func TestTogglesPermittedWhilePausedOrTerminalLocked(t *testing.T) {
	// both toggles stay available even when everything else is gated
	r := room(StepReady)
	r.IsLocked = true

	r = ToggleEmergency(r)
	assert.True(t, r.IsEmergency)
	r = ToggleLock(r)
	assert.False(t, r.IsLocked)
}

func TestInteractionBlocked(t *testing.T) {
	assert.False(t, InteractionBlocked(room(3), Preconditions{}))
	assert.True(t, InteractionBlocked(room(3), Preconditions{Paused: true}))

	locked := room(3)
	locked.IsLocked = true
	assert.False(t, InteractionBlocked(locked, Preconditions{}))

	locked.CurrentStepIndex = StepReady
	assert.True(t, InteractionBlocked(locked, Preconditions{}))
}

func TestSetEndTime(t *testing.T) {
	end := at(14, 30, 0)
	r := SetEndTime(room(1), &end)
	require.NotNil(t, r.EstimatedEndTime)
	assert.True(t, r.EstimatedEndTime.Equal(end))

	r = SetEndTime(r, nil)
	assert.Nil(t, r.EstimatedEndTime)
}

func TestAdjustEndTimeIncreaseFromUnset(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"mid quarter rounds up", at(10, 7, 0), at(10, 15, 0)},
		{"seconds dropped before rounding", at(10, 15, 42), at(10, 15, 0)},
		{"exact boundary unchanged", at(14, 0, 0), at(14, 0, 0)},
		{"just past boundary", at(14, 1, 0), at(14, 15, 0)},
		{"rolls into next hour", at(9, 52, 30), at(10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AdjustEndTime(room(2), Increase, Preconditions{}, tt.now)
			require.True(t, ok)
			require.NotNil(t, got.EstimatedEndTime)
			assert.True(t, got.EstimatedEndTime.Equal(tt.want),
				"got %v, want %v", got.EstimatedEndTime, tt.want)
		})
	}
}

func TestAdjustEndTimeIncreaseFromSet(t *testing.T) {
	end := at(14, 0, 0)
	r := room(2)
	r.EstimatedEndTime = &end

	got, ok := AdjustEndTime(r, Increase, Preconditions{}, at(10, 0, 0))
	require.True(t, ok)
	assert.True(t, got.EstimatedEndTime.Equal(at(14, 15, 0)))
}

func TestAdjustEndTimeDecrease(t *testing.T) {
	end := at(14, 0, 0)

	t.Run("normal decrease", func(t *testing.T) {
		r := room(2)
		r.EstimatedEndTime = &end
		got, ok := AdjustEndTime(r, Decrease, Preconditions{}, at(10, 0, 0))
		require.True(t, ok)
		assert.True(t, got.EstimatedEndTime.Equal(at(13, 45, 0)))
	})

	t.Run("unset rejected", func(t *testing.T) {
		got, ok := AdjustEndTime(room(2), Decrease, Preconditions{}, at(10, 0, 0))
		assert.False(t, ok)
		assert.Nil(t, got.EstimatedEndTime)
	})

	t.Run("would land in the past", func(t *testing.T) {
		r := room(2)
		r.EstimatedEndTime = &end
		got, ok := AdjustEndTime(r, Decrease, Preconditions{}, at(13, 50, 0))
		assert.False(t, ok)
		assert.True(t, got.EstimatedEndTime.Equal(end))
	})

	t.Run("landing exactly on now accepted", func(t *testing.T) {
		r := room(2)
		r.EstimatedEndTime = &end
		got, ok := AdjustEndTime(r, Decrease, Preconditions{}, at(13, 45, 0))
		require.True(t, ok)
		assert.True(t, got.EstimatedEndTime.Equal(at(13, 45, 0)))
	})
}

func TestAdjustEndTimeBlocked(t *testing.T) {
	end := at(14, 0, 0)

	r := room(2)
	r.EstimatedEndTime = &end
	_, ok := AdjustEndTime(r, Increase, Preconditions{Paused: true}, at(10, 0, 0))
	assert.False(t, ok)

	locked := room(StepReady)
	locked.IsLocked = true
	locked.EstimatedEndTime = &end
	_, ok = AdjustEndTime(locked, Decrease, Preconditions{}, at(10, 0, 0))
	assert.False(t, ok)
}

func TestRoundUpToQuarterHour(t *testing.T) {
	assert.True(t, RoundUpToQuarterHour(at(10, 7, 0)).Equal(at(10, 15, 0)))
	assert.True(t, RoundUpToQuarterHour(at(10, 30, 0)).Equal(at(10, 30, 0)))
	assert.True(t, RoundUpToQuarterHour(at(10, 30, 59)).Equal(at(10, 30, 0)))
	assert.True(t, RoundUpToQuarterHour(at(23, 59, 0)).Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestStepTable(t *testing.T) {
	all := Steps()
	require.Len(t, all, StepCount)
	assert.Equal(t, "Příjezd na sál", all[0].Title)
	assert.Equal(t, "Sál připraven", all[StepReady].Title)
	assert.Equal(t, 0, all[StepReady].DefaultDuration)

	_, ok := StepAt(-1)
	assert.False(t, ok)
	_, ok = StepAt(StepCount)
	assert.False(t, ok)

	step, ok := StepAt(2)
	require.True(t, ok)
	assert.Equal(t, "#FF3B30", step.Color)
}
