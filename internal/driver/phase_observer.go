package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names reported by a Session.
const (
	PhaseLoad     = "load"
	PhaseParse    = "parse"
	PhaseBind     = "bind"
	PhaseGenerate = "generate"
)

// PhaseEvent describes a phase boundary for one input.
type PhaseEvent struct {
	Input   string
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
	Failed  bool
}

// PhaseObserver receives phase events; it runs on the compiling goroutine.
type PhaseObserver func(PhaseEvent)
