package install

import (
	"errors"
	"fmt"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
)

var (
	// ErrInstallInProgress is returned when another process holds the app's install lock.
	ErrInstallInProgress = errors.New(messages.InstallLockHeld)
	// ErrStepNotRegistered is wrapped by a StepFailure for a planned step with no implementation.
	ErrStepNotRegistered = errors.New(messages.InstallStepNotRegistered)
	// ErrAlreadyRun is returned when Run is called on an orchestrator that has left NotStarted.
	ErrAlreadyRun = errors.New(messages.InstallAlreadyRun)
)

// PreflightError reports a run blocked by at least one fatal preflight check.
type PreflightError struct {
	// Messages holds every non-passing check message, advisories included.
	Messages []string
	// Fatals holds only the blocking messages.
	Fatals []string
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf(messages.InstallPreflightBlockedFmt, len(e.Fatals))
}

// StepFailure reports the step that aborted the plan. Err is the step's error, unmodified.
type StepFailure struct {
	Step plan.StepID
	Err  error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf(messages.InstallStepFailedFmt, e.Step, e.Err)
}

func (e *StepFailure) Unwrap() error {
	return e.Err
}
