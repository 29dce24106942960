package preflight

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/procrun"
)

// ToolProbe locates executables through the platform lookup command.
type ToolProbe struct {
	Runner procrun.Runner
	// LookupCommand is "which" or "where"; empty selects the platform default.
	LookupCommand string
}

// DefaultLookupCommand returns the lookup command for the current platform.
func DefaultLookupCommand() string {
	if runtime.GOOS == "windows" {
		return "where"
	}
	return "which"
}

// Present reports whether tool can be found. Empty lookup output means the tool
// is absent; the lookup command's exit status is ignored.
func (p ToolProbe) Present(ctx context.Context, tool string) (bool, error) {
	if strings.TrimSpace(tool) == "" {
		return false, errors.New(messages.PreflightToolRequired)
	}
	if p.Runner == nil {
		return false, errors.New(messages.PreflightRunnerRequired)
	}
	lookup := p.LookupCommand
	if lookup == "" {
		lookup = DefaultLookupCommand()
	}
	result, err := p.Runner.Run(ctx, lookup+" "+tool)
	if err != nil {
		return false, fmt.Errorf(messages.PreflightProbeFailedFmt, tool, err)
	}
	return strings.TrimSpace(result.Stdout) != "", nil
}
