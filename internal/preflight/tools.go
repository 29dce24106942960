package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// ToolInfo describes how a tool is presented to the user.
type ToolInfo struct {
	DisplayName string
	InstallURL  string
}

// KnownTools maps tool executables to their display names and install pointers.
var KnownTools = map[string]ToolInfo{
	"node": {DisplayName: "nodejs", InstallURL: "https://nodejs.org/en/"},
	"npm":  {DisplayName: "npm", InstallURL: "https://www.npmjs.com/"},
	"nvm":  {DisplayName: "nvm", InstallURL: "https://github.com/creationix/nvm"},
	"yarn": {DisplayName: "yarn", InstallURL: "https://yarnpkg.com/"},
}

// ToolCheck verifies that a tool is on PATH.
type ToolCheck struct {
	Probe    ToolProbe
	Tool     string
	Required bool
}

// Name returns the check identifier.
func (c ToolCheck) Name() string {
	return "tool:" + c.Tool
}

// Run probes for the tool. A probe error counts as the tool being absent.
func (c ToolCheck) Run(ctx context.Context) Result {
	result := Result{Check: c.Name(), Tool: c.Tool}
	present, err := c.Probe.Present(ctx, c.Tool)
	if err == nil && present {
		result.Outcome = Pass
		return result
	}

	info := toolInfo(c.Tool)
	if c.Required {
		result.Outcome = Fatal
		result.Kind = KindToolMissing
		result.Message = joinURL(fmt.Sprintf(messages.PreflightToolMissingFmt, info.DisplayName), info.InstallURL)
	} else {
		result.Outcome = Advisory
		result.Kind = KindToolAdvisoryMissing
		result.Message = joinURL(fmt.Sprintf(messages.PreflightToolAdvisedFmt, info.DisplayName), info.InstallURL)
	}
	if err != nil {
		result.Message = fmt.Sprintf(messages.PreflightMessageWithCauseFmt, result.Message, err)
	}
	return result
}

func toolInfo(tool string) ToolInfo {
	if info, ok := KnownTools[tool]; ok {
		return info
	}
	return ToolInfo{DisplayName: tool}
}

func joinURL(message string, url string) string {
	if strings.TrimSpace(url) == "" {
		return message
	}
	return message + " " + url
}
