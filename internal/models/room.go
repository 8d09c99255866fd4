package models

import "time"

// Staff is a single member of a room team
type Staff struct {
	Name string `json:"name"`
	Role string `json:"role"` // DOCTOR, NURSE or ANESTHESIOLOGIST
}

// RoomStaff is the team assigned to a room
type RoomStaff struct {
	Doctor           Staff  `json:"doctor"`
	Nurse            Staff  `json:"nurse"`
	Anesthesiologist *Staff `json:"anesthesiologist,omitempty"`
}

// Patient describes the patient currently assigned to a room
type Patient struct {
	Name      string `json:"name"`
	ID        string `json:"id"` // national identifier, e.g. 755210/5678
	Age       int    `json:"age"`
	BloodType string `json:"blood_type,omitempty"`
}

// Procedure describes the procedure currently scheduled in a room
type Procedure struct {
	Name              string `json:"name"`
	StartTime         string `json:"start_time"` // HH:MM
	EstimatedDuration int    `json:"estimated_duration_minutes"`
	Progress          int    `json:"progress"` // 0-100
}

// Room is the in-memory state of one operating room.
// Rooms exist only in the registry: they are seeded once at startup and are
// never persisted, created or deleted at runtime. Mutation goes exclusively
// through the workflow controller.
type Room struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Department       string     `json:"department"`
	CurrentStepIndex int        `json:"current_step_index"` // 0-6, 6 is terminal
	IsEmergency      bool       `json:"is_emergency"`
	IsLocked         bool       `json:"is_locked"`
	IsSeptic         bool       `json:"is_septic"`
	Staff            RoomStaff  `json:"staff"`
	CurrentPatient   *Patient   `json:"current_patient,omitempty"`
	CurrentProcedure *Procedure `json:"current_procedure,omitempty"`
	EstimatedEndTime *time.Time `json:"estimated_end_time,omitempty"`
	Operations24h    int        `json:"operations_24h"`
}

// Clone returns a deep copy so registry snapshots never alias stored state
func (r Room) Clone() Room {
	out := r
	if r.Staff.Anesthesiologist != nil {
		a := *r.Staff.Anesthesiologist
		out.Staff.Anesthesiologist = &a
	}
	if r.CurrentPatient != nil {
		p := *r.CurrentPatient
		out.CurrentPatient = &p
	}
	if r.CurrentProcedure != nil {
		p := *r.CurrentProcedure
		out.CurrentProcedure = &p
	}
	if r.EstimatedEndTime != nil {
		t := *r.EstimatedEndTime
		out.EstimatedEndTime = &t
	}
	return out
}
