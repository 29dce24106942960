package install

// State is the orchestrator lifecycle position.
type State int

const (
	// NotStarted is the state before Run.
	NotStarted State = iota
	// PreflightFailed is terminal: a fatal check blocked the run and no step was invoked.
	PreflightFailed
	// Running means preflight passed and steps are being applied.
	Running
	// Completed is terminal: every planned step succeeded.
	Completed
	// StepFailed is terminal: a step failed and the remaining steps were not run.
	// Steps already applied are left in place.
	StepFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case PreflightFailed:
		return "preflight_failed"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case StepFailed:
		return "step_failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == PreflightFailed || s == Completed || s == StepFailed
}
