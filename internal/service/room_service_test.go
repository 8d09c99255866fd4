package service

import (
	"sync"
	"testing"
	"time"

	"or-control-backend/internal/registry"
	"or-control-backend/internal/session"
	"or-control-backend/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// auditRecorder captures audit calls in memory
type auditRecorder struct {
	mu      sync.Mutex
	actions []string
}

func (a *auditRecorder) CreateAuditLog(userID *uint, action string, details string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	return nil
}

func (a *auditRecorder) recorded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.actions...)
}

type roomFixture struct {
	svc      *RoomService
	audit    *auditRecorder
	sessions *session.Tracker
	clock    time.Time
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()
	f := &roomFixture{
		audit: &auditRecorder{},
		clock: time.Date(2026, 3, 10, 10, 7, 0, 0, time.UTC),
	}
	now := func() time.Time { return f.clock }
	f.sessions = session.NewTracker(now)
	reg := registry.New(registry.SeedRooms(f.clock))
	f.svc = NewRoomService(reg, f.sessions, f.audit, "orbit", now)
	return f
}

func TestGrid(t *testing.T) {
	f := newRoomFixture(t)
	view := f.svc.Grid()

	require.Len(t, view.Rooms, 12)
	// two rooms are seeded mid-cycle, the rest are ready
	assert.Equal(t, 2, view.Stats.Active)
	assert.Equal(t, 10, view.Stats.Ready)

	first := view.Rooms[0]
	assert.Equal(t, "Chirurgický výkon", first.StepTitle)
	assert.Equal(t, "#FF3B30", first.ThemeColor)
	assert.Equal(t, "12:07", first.EstimatedEnd)
	assert.InDelta(t, 3.0/7.0, first.Progress, 1e-9)
}

func TestDetail(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.svc.Detail("99")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	view, err := f.svc.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "Chirurgický výkon", view.Step.Title)
	assert.Equal(t, "Ukončení výkonu", view.NextStep.Title)
	assert.False(t, view.Paused)
	assert.Equal(t, "00:00", view.ElapsedPhase)
	assert.Equal(t, "orbit", view.DialTheme)
	assert.False(t, view.InteractionBlocked)
	assert.Equal(t, "SPUSTIT DALŠÍ FÁZI", view.CenterCaption)
}

func TestDetailSessionClocks(t *testing.T) {
	f := newRoomFixture(t)

	require.NoError(t, f.svc.OpenDetail("1"))
	f.clock = f.clock.Add(95 * time.Second)

	view, err := f.svc.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "01:35", view.ElapsedPhase)

	f.svc.CloseDetail("1")
	view, err = f.svc.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "00:00", view.ElapsedPhase)
}

func TestPauseGatesPhaseTransitions(t *testing.T) {
	f := newRoomFixture(t)
	require.NoError(t, f.svc.OpenDetail("1"))

	paused, err := f.svc.Pause("1")
	require.NoError(t, err)
	require.True(t, paused)

	res, err := f.svc.Advance("1", nil)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 2, res.Room.CurrentStepIndex)

	res, err = f.svc.AdjustEndTime("1", workflow.Increase, nil)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	view, err := f.svc.Detail("1")
	require.NoError(t, err)
	assert.True(t, view.Paused)
	assert.True(t, view.InteractionBlocked)
	assert.Equal(t, "POZASTAVENO", view.StatusBadge)
	assert.Equal(t, workflow.ColorPaused, view.ThemeColor)

	resumed, err := f.svc.Resume("1")
	require.NoError(t, err)
	require.True(t, resumed)

	res, err = f.svc.Advance("1", nil)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 3, res.Room.CurrentStepIndex)
}

func TestAdvanceAuditsOnlyAcceptedActions(t *testing.T) {
	f := newRoomFixture(t)
	userID := uint(7)

	res, err := f.svc.Advance("1", &userID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, f.audit.recorded(), "phase_advance")

	// a locked room at the terminal phase rejects silently and stays unaudited
	_, err = f.svc.ToggleLock("3", &userID)
	require.NoError(t, err)
	res, err = f.svc.Advance("3", &userID)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	count := 0
	for _, a := range f.audit.recorded() {
		if a == "phase_advance" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSetStepValidation(t *testing.T) {
	f := newRoomFixture(t)

	_, err := f.svc.SetStep("1", 7, nil)
	assert.ErrorIs(t, err, ErrInvalidStep)
	_, err = f.svc.SetStep("1", -1, nil)
	assert.ErrorIs(t, err, ErrInvalidStep)

	res, err := f.svc.SetStep("1", 5, nil)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 5, res.Room.CurrentStepIndex)

	_, err = f.svc.SetStep("99", 3, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestToggles(t *testing.T) {
	f := newRoomFixture(t)

	res, err := f.svc.ToggleEmergency("1", nil)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.Room.IsEmergency)

	res, err = f.svc.ToggleLock("1", nil)
	require.NoError(t, err)
	assert.True(t, res.Room.IsLocked)

	actions := f.audit.recorded()
	assert.Contains(t, actions, "emergency_toggle")
	assert.Contains(t, actions, "lock_toggle")
}

func TestSetAndAdjustEndTime(t *testing.T) {
	f := newRoomFixture(t)

	// room 3 starts with no end time; increase rounds now up to the quarter
	res, err := f.svc.AdjustEndTime("3", workflow.Increase, nil)
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.NotNil(t, res.Room.EstimatedEndTime)
	assert.Equal(t, "10:15", workflow.FormatClock(*res.Room.EstimatedEndTime))

	res, err = f.svc.AdjustEndTime("3", workflow.Increase, nil)
	require.NoError(t, err)
	assert.Equal(t, "10:30", workflow.FormatClock(*res.Room.EstimatedEndTime))

	res, err = f.svc.AdjustEndTime("3", workflow.Decrease, nil)
	require.NoError(t, err)
	assert.Equal(t, "10:15", workflow.FormatClock(*res.Room.EstimatedEndTime))

	// explicit clear
	res, err = f.svc.SetEndTime("3", nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Nil(t, res.Room.EstimatedEndTime)

	// decrease with nothing set rejects silently
	res, err = f.svc.AdjustEndTime("3", workflow.Decrease, nil)
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestTimelineView(t *testing.T) {
	f := newRoomFixture(t)
	view := f.svc.Timeline()

	assert.Equal(t, "10:07", view.Clock)
	assert.InDelta(t, 187.0/1440.0, view.NowPosition, 1e-9)
	assert.Len(t, view.HourLabels, 25)
	assert.Len(t, view.Legend, workflow.StepCount)
	assert.Len(t, view.Slots, 12)
}

func TestRefreshNowMarker(t *testing.T) {
	f := newRoomFixture(t)

	f.clock = f.clock.Add(3 * time.Hour)
	f.svc.RefreshNowMarker()

	view := f.svc.Timeline()
	assert.Equal(t, "13:07", view.Clock)
}

func TestSweepExpiredEndTimes(t *testing.T) {
	f := newRoomFixture(t)

	// room 1 is seeded with an end time two hours out
	f.clock = f.clock.Add(5 * time.Hour)
	cleared := f.svc.SweepExpiredEndTimes(2 * time.Hour)
	assert.Equal(t, 1, cleared)

	room, err := f.svc.Detail("1")
	require.NoError(t, err)
	assert.Nil(t, room.Room.EstimatedEndTime)
	assert.Contains(t, f.audit.recorded(), "end_time_expired")

	// a second sweep finds nothing
	assert.Equal(t, 0, f.svc.SweepExpiredEndTimes(2*time.Hour))
}

func TestSweepKeepsRecentEndTimes(t *testing.T) {
	f := newRoomFixture(t)

	// only three hours past a two-hour-out estimate minus retention keeps it
	f.clock = f.clock.Add(3 * time.Hour)
	assert.Equal(t, 0, f.svc.SweepExpiredEndTimes(2*time.Hour))
}
