package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"or-control-backend/internal/models"
	"or-control-backend/internal/registry"
	"or-control-backend/internal/session"
	"or-control-backend/internal/timeline"
	"or-control-backend/internal/workflow"
)

// ErrRoomNotFound is surfaced by every room operation with an unknown id
var ErrRoomNotFound = registry.ErrRoomNotFound

// ErrInvalidStep rejects out-of-range phase indices before the controller
// ever sees them
var ErrInvalidStep = errors.New("invalid step index")

// Auditor records admin actions. Satisfied by repository.AuditRepository.
type Auditor interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

// ActionResult is what every mutating room operation returns. Changed is
// false for gated rejections, which are permission gates rather than faults.
type ActionResult struct {
	Room    models.Room `json:"room"`
	Changed bool        `json:"changed"`
}

// Stats is the dashboard header summary
type Stats struct {
	Active int `json:"active"`
	Ready  int `json:"ready"`
}

// GridRoom is one card on the dashboard grid
type GridRoom struct {
	models.Room
	StepTitle    string  `json:"step_title"`
	ThemeColor   string  `json:"theme_color"`
	StatusLabel  string  `json:"status_label"`
	EstimatedEnd string  `json:"estimated_end,omitempty"` // HH:MM
	Progress     float64 `json:"progress"`
}

// GridView is the full dashboard payload
type GridView struct {
	Rooms []GridRoom `json:"rooms"`
	Stats Stats      `json:"stats"`
}

// RoomDetailView is the payload backing the per-room dial screen
type RoomDetailView struct {
	Room               models.Room   `json:"room"`
	Step               workflow.Step `json:"step"`
	NextStep           workflow.Step `json:"next_step"`
	Paused             bool          `json:"paused"`
	ElapsedPhase       string        `json:"elapsed_phase"`
	ElapsedPause       string        `json:"elapsed_pause"`
	ThemeColor         string        `json:"theme_color"`
	StatusBadge        string        `json:"status_badge"`
	Heading            string        `json:"heading"`
	CenterCaption      string        `json:"center_caption"`
	InteractionBlocked bool          `json:"interaction_blocked"`
	EstimatedEnd       string        `json:"estimated_end,omitempty"` // HH:MM
	DialTheme          string        `json:"dial_theme"`
}

// TimelineView is the day-axis payload
type TimelineView struct {
	Clock       string          `json:"clock"` // HH:MM
	NowPosition float64         `json:"now_position"`
	HourLabels  []string        `json:"hour_labels"`
	Legend      []workflow.Step `json:"legend"`
	Slots       []timeline.Slot `json:"slots"`
}

// RoomService ties the registry, the detail sessions and the workflow
// controller together, and writes the audit trail for every accepted action.
type RoomService struct {
	registry  *registry.Registry
	sessions  *session.Tracker
	audit     Auditor
	dialTheme string
	now       func() time.Time

	markerMu    sync.RWMutex
	nowPosition float64
	markerClock string
}

// NewRoomService creates the service. A nil clock means wall-clock time.
func NewRoomService(reg *registry.Registry, sessions *session.Tracker, audit Auditor, dialTheme string, now func() time.Time) *RoomService {
	if now == nil {
		now = time.Now
	}
	s := &RoomService{
		registry:  reg,
		sessions:  sessions,
		audit:     audit,
		dialTheme: dialTheme,
		now:       now,
	}
	s.RefreshNowMarker()
	return s
}

// Grid returns the dashboard payload: all room cards plus the header stats
func (s *RoomService) Grid() GridView {
	rooms := s.registry.List()
	view := GridView{Rooms: make([]GridRoom, 0, len(rooms))}
	for _, room := range rooms {
		if room.CurrentStepIndex < workflow.StepReady {
			view.Stats.Active++
		} else {
			view.Stats.Ready++
		}

		card := GridRoom{
			Room:        room,
			ThemeColor:  workflow.ThemeColor(room, false),
			StatusLabel: workflow.CardLabel(room),
			Progress:    workflow.ProgressFraction(room),
		}
		if step, ok := workflow.StepAt(room.CurrentStepIndex); ok {
			card.StepTitle = step.Title
		}
		if room.EstimatedEndTime != nil {
			card.EstimatedEnd = workflow.FormatClock(*room.EstimatedEndTime)
		}
		view.Rooms = append(view.Rooms, card)
	}
	return view
}

// Detail returns the dial-screen payload for one room. Rooms without an open
// session report zeroed clocks and an unpaused state.
func (s *RoomService) Detail(roomID string) (RoomDetailView, error) {
	room, err := s.registry.Get(roomID)
	if err != nil {
		return RoomDetailView{}, err
	}

	snap, _ := s.sessions.Get(roomID)
	pre := workflow.Preconditions{Paused: snap.Paused}

	step, _ := workflow.StepAt(room.CurrentStepIndex)
	nextStep, _ := workflow.StepAt((room.CurrentStepIndex + 1) % workflow.StepCount)

	view := RoomDetailView{
		Room:               room,
		Step:               step,
		NextStep:           nextStep,
		Paused:             snap.Paused,
		ElapsedPhase:       session.FormatElapsed(snap.PhaseElapsed),
		ElapsedPause:       session.FormatElapsed(snap.PauseElapsed),
		ThemeColor:         workflow.ThemeColor(room, snap.Paused),
		StatusBadge:        workflow.DetailBadge(room, snap.Paused),
		Heading:            workflow.DetailHeading(room, snap.Paused),
		CenterCaption:      workflow.CenterCaption(room),
		InteractionBlocked: workflow.InteractionBlocked(room, pre),
		DialTheme:          s.dialTheme,
	}
	if room.EstimatedEndTime != nil {
		view.EstimatedEnd = workflow.FormatClock(*room.EstimatedEndTime)
	}
	return view, nil
}

// OpenDetail starts the detail session (pause flag + phase clock) for a room
func (s *RoomService) OpenDetail(roomID string) error {
	if _, err := s.registry.Get(roomID); err != nil {
		return err
	}
	s.sessions.Open(roomID)
	return nil
}

// CloseDetail discards a room's detail session
func (s *RoomService) CloseDetail(roomID string) {
	s.sessions.Close(roomID)
}

// Pause freezes a room's phase and end-time transitions. Pausing stays
// available in every state, including a locked room on its terminal phase.
func (s *RoomService) Pause(roomID string) (bool, error) {
	if _, err := s.registry.Get(roomID); err != nil {
		return false, err
	}
	return s.sessions.Pause(roomID), nil
}

// Resume lifts a pause
func (s *RoomService) Resume(roomID string) (bool, error) {
	if _, err := s.registry.Get(roomID); err != nil {
		return false, err
	}
	return s.sessions.Resume(roomID), nil
}

// Advance moves a room to its next workflow phase
func (s *RoomService) Advance(roomID string, userID *uint) (ActionResult, error) {
	pre := workflow.Preconditions{Paused: s.sessions.Paused(roomID)}

	var changed bool
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		r, changed = workflow.Advance(r, pre)
		return r
	})
	if err != nil {
		return ActionResult{}, err
	}

	if changed {
		s.sessions.ResetPhaseClock(roomID)
		_ = s.audit.CreateAuditLog(userID, "phase_advance",
			fmt.Sprintf("Advanced room %s to step %d", roomID, room.CurrentStepIndex))
	}
	return ActionResult{Room: room, Changed: changed}, nil
}

// SetStep jumps a room to a specific workflow phase
func (s *RoomService) SetStep(roomID string, target int, userID *uint) (ActionResult, error) {
	if target < 0 || target >= workflow.StepCount {
		return ActionResult{}, ErrInvalidStep
	}
	pre := workflow.Preconditions{Paused: s.sessions.Paused(roomID)}

	var changed bool
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		r, changed = workflow.SetStep(r, target, pre)
		return r
	})
	if err != nil {
		return ActionResult{}, err
	}

	if changed {
		s.sessions.ResetPhaseClock(roomID)
		_ = s.audit.CreateAuditLog(userID, "phase_set",
			fmt.Sprintf("Set room %s to step %d", roomID, target))
	}
	return ActionResult{Room: room, Changed: changed}, nil
}

// ToggleEmergency flips the emergency override for a room
func (s *RoomService) ToggleEmergency(roomID string, userID *uint) (ActionResult, error) {
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		return workflow.ToggleEmergency(r)
	})
	if err != nil {
		return ActionResult{}, err
	}

	state := "cleared"
	if room.IsEmergency {
		state = "raised"
	}
	_ = s.audit.CreateAuditLog(userID, "emergency_toggle",
		fmt.Sprintf("Emergency %s for room %s", state, roomID))
	return ActionResult{Room: room, Changed: true}, nil
}

// ToggleLock flips the forward-only lock for a room
func (s *RoomService) ToggleLock(roomID string, userID *uint) (ActionResult, error) {
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		return workflow.ToggleLock(r)
	})
	if err != nil {
		return ActionResult{}, err
	}

	state := "unlocked"
	if room.IsLocked {
		state = "locked"
	}
	_ = s.audit.CreateAuditLog(userID, "lock_toggle",
		fmt.Sprintf("Room %s %s", roomID, state))
	return ActionResult{Room: room, Changed: true}, nil
}

// SetEndTime replaces a room's estimated end time; nil clears it
func (s *RoomService) SetEndTime(roomID string, t *time.Time, userID *uint) (ActionResult, error) {
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		return workflow.SetEndTime(r, t)
	})
	if err != nil {
		return ActionResult{}, err
	}

	details := fmt.Sprintf("Cleared estimated end time for room %s", roomID)
	if t != nil {
		details = fmt.Sprintf("Set estimated end time for room %s to %s", roomID, workflow.FormatClock(*t))
	}
	_ = s.audit.CreateAuditLog(userID, "end_time_set", details)
	return ActionResult{Room: room, Changed: true}, nil
}

// AdjustEndTime applies the 15-minute +/- rule to a room's end time
func (s *RoomService) AdjustEndTime(roomID string, dir workflow.AdjustDirection, userID *uint) (ActionResult, error) {
	pre := workflow.Preconditions{Paused: s.sessions.Paused(roomID)}
	now := s.now()

	var changed bool
	room, err := s.registry.Update(roomID, func(r models.Room) models.Room {
		r, changed = workflow.AdjustEndTime(r, dir, pre, now)
		return r
	})
	if err != nil {
		return ActionResult{}, err
	}

	if changed {
		action := "increased"
		if dir == workflow.Decrease {
			action = "decreased"
		}
		_ = s.audit.CreateAuditLog(userID, "end_time_adjustment",
			fmt.Sprintf("Estimated end time for room %s %s to %s", roomID, action, workflow.FormatClock(*room.EstimatedEndTime)))
	}
	return ActionResult{Room: room, Changed: changed}, nil
}

// Timeline returns the day-axis payload using the sweeper-maintained marker
func (s *RoomService) Timeline() TimelineView {
	s.markerMu.RLock()
	pos, clock := s.nowPosition, s.markerClock
	s.markerMu.RUnlock()

	return TimelineView{
		Clock:       clock,
		NowPosition: pos,
		HourLabels:  timeline.HourLabels(),
		Legend:      workflow.Steps(),
		Slots:       timeline.BuildSlots(s.registry.List()),
	}
}

// RefreshNowMarker re-samples the wall clock for the timeline now-marker.
// Called on a fixed cadence by the display sweeper.
func (s *RoomService) RefreshNowMarker() {
	now := s.now()
	s.markerMu.Lock()
	s.nowPosition = timeline.NowFraction(now)
	s.markerClock = workflow.FormatClock(now)
	s.markerMu.Unlock()
}

// SweepExpiredEndTimes clears estimated end times that have drifted further
// than retention into the past and reports how many rooms were touched.
func (s *RoomService) SweepExpiredEndTimes(retention time.Duration) int {
	now := s.now()
	cleared := 0
	for _, room := range s.registry.List() {
		if room.EstimatedEndTime == nil || now.Sub(*room.EstimatedEndTime) <= retention {
			continue
		}
		id := room.ID
		if _, err := s.registry.Update(id, func(r models.Room) models.Room {
			return workflow.SetEndTime(r, nil)
		}); err == nil {
			cleared++
			_ = s.audit.CreateAuditLog(nil, "end_time_expired",
				fmt.Sprintf("Cleared stale estimated end time for room %s", id))
		}
	}
	return cleared
}
