package workflow

import (
	"time"

	"or-control-backend/internal/models"
)

// Override colors layered over the per-step palette
const (
	ColorEmergency = "#FF3B30"
	ColorLocked    = "#FBBF24"
	ColorPaused    = "#06b6d4"
)

// ThemeColor picks the accent color for a room: emergency wins over lock,
// lock over pause, pause over the active step color.
func ThemeColor(r models.Room, paused bool) string {
	switch {
	case r.IsEmergency:
		return ColorEmergency
	case r.IsLocked:
		return ColorLocked
	case paused:
		return ColorPaused
	}
	step, ok := StepAt(r.CurrentStepIndex)
	if !ok {
		return ColorPaused
	}
	return step.Color
}

// CardLabel is the status strip shown on a room card in the grid
func CardLabel(r models.Room) string {
	switch {
	case r.IsEmergency:
		return "STAV NOUZE"
	case r.IsLocked:
		return "SÁL UZAMČEN"
	}
	step, ok := StepAt(r.CurrentStepIndex)
	if !ok {
		return ""
	}
	return step.Title
}

// DetailBadge is the status pill shown in the room detail view
func DetailBadge(r models.Room, paused bool) string {
	switch {
	case r.IsEmergency:
		return "EMERGENCY AKTIVNÍ"
	case r.IsLocked && r.CurrentStepIndex == StepReady:
		return "SÁL UZAMČEN"
	case r.IsLocked:
		return "DOKONČOVÁNÍ PŘED UZAMČENÍM"
	case paused:
		return "POZASTAVENO"
	}
	step, ok := StepAt(r.CurrentStepIndex)
	if !ok {
		return ""
	}
	return step.StatusLabel
}

// DetailHeading is the large title under the detail dial
func DetailHeading(r models.Room, paused bool) string {
	switch {
	case r.IsEmergency:
		return "Urgentní příjem"
	case r.IsLocked && r.CurrentStepIndex == StepReady:
		return "Sál uzamčen"
	case paused:
		return "Probíhá pauza"
	}
	step, ok := StepAt(r.CurrentStepIndex)
	if !ok {
		return ""
	}
	return step.Title
}

// CenterCaption is the call-to-action above the next step title in the dial
func CenterCaption(r models.Room) string {
	switch {
	case r.IsLocked:
		return "DOKONČIT DO FÁZE PŘIPRAVEN"
	case r.CurrentStepIndex == StepReady:
		return "SPUSTIT FÁZI"
	}
	return "SPUSTIT DALŠÍ FÁZI"
}

// FormatClock renders an absolute time the way the dashboard displays it,
// 24-hour HH:MM
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// ProgressFraction is the share of the cycle completed, for the card ring
func ProgressFraction(r models.Room) float64 {
	i := r.CurrentStepIndex
	if i < 0 {
		i = 0
	}
	if i >= StepCount {
		i = StepReady
	}
	return float64(i+1) / float64(StepCount)
}
