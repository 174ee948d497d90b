package engine

// Phase is the current sub-state of a running routine.
type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseRest      Phase = "rest"
	PhaseRoundRest Phase = "round-rest"
	// PhaseCountdown is reserved for a pre-routine countdown. The sequencer
	// never enters it.
	PhaseCountdown Phase = "countdown"
)

func (p Phase) String() string {
	return string(p)
}

// Status is the lifecycle stage of an Engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// State is the observable state of one run. Round and Set are 1-based, and
// Remaining and Total are in seconds.
type State struct {
	Phase     Phase `json:"phase"`
	Round     int   `json:"round"`
	Set       int   `json:"set"`
	Remaining int   `json:"remaining"`
	Total     int   `json:"total"`
	Running   bool  `json:"running"`
	Paused    bool  `json:"paused"`
}

// initialState is the zeroed position of an engine that has not started or
// was cancelled.
func initialState(total int) State {
	return State{
		Phase: PhaseActive,
		Round: 1,
		Set:   1,
		Total: total,
	}
}
