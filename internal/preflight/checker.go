package preflight

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/conn-castle/ror-installer/internal/procrun"
	"github.com/conn-castle/ror-installer/internal/versions"
)

// Config selects which checks CheckAll runs.
type Config struct {
	RequiredTools []string
	OptionalTools []string
	// MinVersions maps a tool to the oldest version that does not trigger an advisory.
	MinVersions map[string]string
	BypassEnv   string
	// CleanMarkers overrides the git status texts accepted as a clean tree.
	CleanMarkers  []string
	LookupCommand string
}

// DefaultConfig returns the stock checks: node and npm required, nvm advised,
// COVERAGE as the working tree bypass.
func DefaultConfig() Config {
	return Config{
		RequiredTools: []string{"node", "npm"},
		OptionalTools: []string{"nvm"},
		BypassEnv:     DefaultBypassEnv,
	}
}

// Checker runs every configured check and aggregates the results.
type Checker struct {
	Runner procrun.Runner
	System System
	Cache  *versions.Cache
	Config Config
	Logger zerolog.Logger
}

// CheckAll runs all checks in fixed order: required tools, the working tree,
// optional tools, then version advisories for tools that were found. Every
// check runs even after a fatal result.
func (c *Checker) CheckAll(ctx context.Context) Report {
	probe := ToolProbe{Runner: c.Runner, LookupCommand: c.Config.LookupCommand}
	var report Report
	present := make(map[string]bool)
	record := func(result Result) {
		c.Logger.Debug().
			Str("check", result.Check).
			Str("outcome", result.Outcome.String()).
			Str("kind", string(result.Kind)).
			Msg("preflight check")
		if result.Tool != "" && result.Outcome == Pass {
			present[result.Tool] = true
		}
		report.add(result)
	}

	for _, tool := range c.Config.RequiredTools {
		record(ToolCheck{Probe: probe, Tool: tool, Required: true}.Run(ctx))
	}
	record(WorkingTreeCheck{
		Runner:    c.Runner,
		System:    c.system(),
		BypassEnv: c.Config.BypassEnv,
		Markers:   c.Config.CleanMarkers,
	}.Run(ctx))
	for _, tool := range c.Config.OptionalTools {
		record(ToolCheck{Probe: probe, Tool: tool}.Run(ctx))
	}

	tools := make([]string, 0, len(c.Config.MinVersions))
	for tool := range c.Config.MinVersions {
		tools = append(tools, tool)
	}
	sort.Strings(tools)
	for _, tool := range tools {
		if !present[tool] {
			continue
		}
		record(VersionCheck{
			Runner:  c.Runner,
			Cache:   c.cache(),
			Tool:    tool,
			Minimum: c.Config.MinVersions[tool],
		}.Run(ctx))
	}

	c.Logger.Info().
		Bool("blocked", report.Blocked).
		Int("messages", len(report.Messages)).
		Msg("preflight complete")
	return report
}

func (c *Checker) system() System {
	if c.System == nil {
		return RealSystem{}
	}
	return c.System
}

func (c *Checker) cache() *versions.Cache {
	if c.Cache == nil {
		c.Cache = versions.NewCache()
	}
	return c.Cache
}
