package workflow

// Step describes one phase of the operating room workflow cycle
type Step struct {
	Title           string `json:"title"`
	Organizer       string `json:"organizer"`
	StatusLabel     string `json:"status"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	DefaultDuration int    `json:"default_duration_minutes"`
}

const (
	// StepCount is the number of workflow phases
	StepCount = 7
	// StepReady is the terminal/idle phase ("room ready")
	StepReady = StepCount - 1
)

// steps is the fixed workflow phase table. It is process-wide immutable
// configuration: index 0 is the cycle start (patient arrival), index 6 is
// terminal. Labels stay in the clinic's locale.
var steps = [StepCount]Step{
	{Title: "Příjezd na sál", Organizer: "Příjmový tým", StatusLabel: "Probíhá", Color: "#A78BFA", Icon: "user-check", DefaultDuration: 15},
	{Title: "Začátek anestezie", Organizer: "MUDr. Jelínek", StatusLabel: "Kritické", Color: "#2DD4BF", Icon: "syringe", DefaultDuration: 30},
	{Title: "Chirurgický výkon", Organizer: "MUDr. Procházka", StatusLabel: "Operační fáze", Color: "#FF3B30", Icon: "scissors", DefaultDuration: 60},
	{Title: "Ukončení výkonu", Organizer: "MUDr. Procházka", StatusLabel: "Dokončování", Color: "#FBBF24", Icon: "star", DefaultDuration: 15},
	{Title: "Ukončení anestezie", Organizer: "Anest. sestra", StatusLabel: "Monitoring", Color: "#818CF8", Icon: "activity", DefaultDuration: 30},
	{Title: "Úklid sálu", Organizer: "Sanitární tým", StatusLabel: "Sanitace", Color: "#5B65DC", Icon: "spray-can", DefaultDuration: 30},
	{Title: "Sál připraven", Organizer: "Vedoucí sestra", StatusLabel: "Volno", Color: "#34C759", Icon: "sparkles", DefaultDuration: 0},
}

// StepAt returns the descriptor for a phase index, with bounds validation
func StepAt(index int) (Step, bool) {
	if index < 0 || index >= StepCount {
		return Step{}, false
	}
	return steps[index], true
}

// Steps returns a copy of the full phase table, in order
func Steps() []Step {
	out := make([]Step, StepCount)
	copy(out, steps[:])
	return out
}
