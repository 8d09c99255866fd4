// Package timeline computes the day-view model: a 24-hour axis anchored at
// 07:00 with a moving now-marker and one slot per room.
package timeline

import (
	"fmt"
	"time"

	"or-control-backend/internal/models"
	"or-control-backend/internal/workflow"
)

// DayStartHour anchors the axis: the surgical day runs 07:00 to 07:00
const DayStartHour = 7

const minutesPerDay = 24 * 60

// Slot is one room row on the timeline
type Slot struct {
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	Department  string `json:"department"`
	Badge       string `json:"badge,omitempty"` // Nouzový / Uzamčeno
	Label       string `json:"label"`
	ThemeColor  string `json:"theme_color"`
	Icon        string `json:"icon"`
	PatientName string `json:"patient_name,omitempty"`
}

// MinutesSinceDayStart maps a wall-clock time onto the 07:00-anchored axis.
// Hours before 07:00 belong to the tail of the previous surgical day.
func MinutesSinceDayStart(t time.Time) int {
	h, m := t.Hour(), t.Minute()
	if h >= DayStartHour {
		return (h-DayStartHour)*60 + m
	}
	return (h+24-DayStartHour)*60 + m
}

// NowFraction is the now-marker position as a fraction of the full axis
func NowFraction(t time.Time) float64 {
	return float64(MinutesSinceDayStart(t)) / minutesPerDay
}

// HourLabels returns the 25 axis labels, 07:00 through 07:00 the next
// morning, with midnight rendered as 24:00
func HourLabels() []string {
	labels := make([]string, 0, 25)
	for i := 0; i <= 24; i++ {
		h := (DayStartHour + i) % 24
		if h == 0 {
			labels = append(labels, "24:00")
			continue
		}
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}

// BuildSlots derives one timeline slot per room. Under emergency or lock the
// override label replaces the step title and the patient name is suppressed.
func BuildSlots(rooms []models.Room) []Slot {
	slots := make([]Slot, 0, len(rooms))
	for _, room := range rooms {
		idx := room.CurrentStepIndex
		if idx < 0 {
			idx = 0
		}
		if idx > workflow.StepReady {
			idx = workflow.StepReady
		}
		step, _ := workflow.StepAt(idx)

		slot := Slot{
			RoomID:     room.ID,
			RoomName:   room.Name,
			Department: room.Department,
			Label:      step.Title,
			ThemeColor: workflow.ThemeColor(room, false),
			Icon:       step.Icon,
		}
		switch {
		case room.IsEmergency:
			slot.Badge = "Nouzový"
			slot.Label = "Nouzový"
		case room.IsLocked:
			slot.Badge = "Uzamčeno"
			slot.Label = "Uzamčeno"
		default:
			if room.CurrentPatient != nil {
				slot.PatientName = room.CurrentPatient.Name
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
