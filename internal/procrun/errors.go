package procrun

import (
	"errors"
	"fmt"
	"time"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// CommandExecutionError reports a command that exited non-zero (or never started)
// under RunOrFail.
type CommandExecutionError struct {
	FailureMessage string
	Command        string
	Stdout         string
	Stderr         string
	ExitStatus     int
	// Cause is set when the command could not be run at all.
	Cause error
}

func (e *CommandExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(messages.ProcCommandErrorCauseFmt, e.FailureMessage, e.Command, e.Cause)
	}
	return fmt.Sprintf(messages.ProcCommandErrorFmt, e.FailureMessage, e.Command, e.ExitStatus)
}

func (e *CommandExecutionError) Unwrap() error {
	return e.Cause
}

// TimeoutError reports a command killed after exceeding its timeout.
type TimeoutError struct {
	Command string
	Timeout time.Duration
	Stdout  string
	Stderr  string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf(messages.ProcTimeoutFmt, e.Command, e.Timeout)
}

// IsTimeout reports whether err is or wraps a *TimeoutError.
func IsTimeout(err error) bool {
	var timeout *TimeoutError
	return errors.As(err, &timeout)
}
