package preflight

import (
	"context"
	"fmt"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/procrun"
	"github.com/conn-castle/ror-installer/internal/versions"
)

// VersionCheck advises when a tool is older than a minimum version.
type VersionCheck struct {
	Runner  procrun.Runner
	Cache   *versions.Cache
	Tool    string
	Minimum string
}

// Name returns the check identifier.
func (c VersionCheck) Name() string {
	return "version:" + c.Tool
}

// Run executes "<tool> --version" and compares the reported version. It never
// returns Fatal.
func (c VersionCheck) Run(ctx context.Context) Result {
	result := Result{Check: c.Name(), Tool: c.Tool}
	display := toolInfo(c.Tool).DisplayName

	command := c.Tool + " --version"
	output, err := procrun.RunOrFail(ctx, c.Runner, command, fmt.Sprintf(messages.PreflightVersionCommandFailedFmt, c.Tool))
	if err != nil {
		return advisoryOutdated(result, fmt.Sprintf(messages.PreflightVersionUnknownFmt, display, err))
	}
	current, ok := versions.Extract(output.Stdout)
	if !ok {
		current, ok = versions.Extract(output.Stderr)
	}
	if !ok {
		return advisoryOutdated(result, fmt.Sprintf(messages.PreflightVersionUnparsedFmt, command, display))
	}

	cache := c.Cache
	if cache == nil {
		cache = versions.NewCache()
	}
	older, err := cache.LessThan(current, c.Minimum)
	if err != nil {
		return advisoryOutdated(result, fmt.Sprintf(messages.PreflightVersionUnknownFmt, display, err))
	}
	if older {
		return advisoryOutdated(result, fmt.Sprintf(messages.PreflightToolOutdatedFmt, display, current, c.Minimum))
	}
	result.Outcome = Pass
	return result
}

func advisoryOutdated(result Result, message string) Result {
	result.Outcome = Advisory
	result.Kind = KindToolOutdated
	result.Message = message
	return result
}
