package preflight

import (
	"context"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/procrun"
)

// DefaultBypassEnv disables the working tree check when set, to any value.
const DefaultBypassEnv = "COVERAGE"

// DefaultCleanMarker is the git status text that marks a clean working tree.
const DefaultCleanMarker = "nothing to commit, working directory clean"

const gitStatusCommand = "git status"

// WorkingTreeCheck blocks installation over uncommitted changes.
type WorkingTreeCheck struct {
	Runner procrun.Runner
	System System
	// BypassEnv names the variable that skips the check; empty disables bypass.
	BypassEnv string
	// Markers are accepted clean-tree texts; empty means DefaultCleanMarker.
	Markers []string
}

// Name returns the check identifier.
func (c WorkingTreeCheck) Name() string {
	return "working-tree"
}

// Run checks git status. When the bypass variable is set no process is run.
func (c WorkingTreeCheck) Run(ctx context.Context) Result {
	result := Result{Check: c.Name()}
	if c.bypassed() {
		result.Outcome = Pass
		return result
	}

	if c.Runner != nil {
		status, err := c.Runner.Run(ctx, gitStatusCommand)
		if err == nil && c.clean(status.Stdout) {
			result.Outcome = Pass
			return result
		}
	}
	result.Outcome = Fatal
	result.Kind = KindUncommittedChanges
	result.Message = messages.PreflightUncommittedChanges
	return result
}

func (c WorkingTreeCheck) bypassed() bool {
	if c.BypassEnv == "" || c.System == nil {
		return false
	}
	_, ok := c.System.LookupEnv(c.BypassEnv)
	return ok
}

func (c WorkingTreeCheck) clean(output string) bool {
	markers := c.Markers
	if len(markers) == 0 {
		markers = []string{DefaultCleanMarker}
	}
	for _, marker := range markers {
		if marker != "" && strings.Contains(output, marker) {
			return true
		}
	}
	return false
}
