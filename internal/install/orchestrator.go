// Package install drives an installation: preflight, step selection, then
// sequential step application.
//
// Step execution is fail-fast with no rollback. A failed run may leave the
// steps before the failure applied, so every step must be additive and safe to
// re-run.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
	"github.com/conn-castle/ror-installer/internal/preflight"
	"github.com/conn-castle/ror-installer/internal/steps"
)

// Preflight runs the environment checks that gate an installation.
type Preflight interface {
	CheckAll(ctx context.Context) preflight.Report
}

// StepResolver finds the implementation of a planned step.
type StepResolver interface {
	Lookup(id plan.StepID) (steps.Step, bool)
}

// Options configure one run.
type Options struct {
	AppDir  string
	AppName string
	Install plan.Options
	Force   bool
	// DryRun runs preflight and prints the plan without applying any step.
	DryRun       bool
	ServerBundle string
	DiffMaxLines int
}

// Outcome summarizes a run.
type Outcome struct {
	State   State
	Plan    plan.Plan
	Applied []plan.StepID
	Report  preflight.Report
	DryRun  bool
}

// Orchestrator runs one installation. It is single-use.
type Orchestrator struct {
	Preflight Preflight
	Steps     StepResolver
	Out       io.Writer
	Logger    zerolog.Logger
	// System is handed to steps for filesystem access; nil means the OS filesystem.
	System steps.System
	// LockDir holds install lock files; empty means the OS temp dir.
	LockDir string

	state State
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the installation described by opts.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (outcome Outcome, err error) {
	if o.state != NotStarted {
		return Outcome{State: o.state}, ErrAlreadyRun
	}
	if o.Preflight == nil {
		return Outcome{}, errors.New(messages.InstallPreflightRequired)
	}
	if o.Steps == nil {
		return Outcome{}, errors.New(messages.InstallStepsRequired)
	}
	if strings.TrimSpace(opts.AppDir) == "" {
		return Outcome{}, errors.New(messages.InstallAppDirRequired)
	}
	appDir, err := filepath.Abs(opts.AppDir)
	if err != nil {
		return Outcome{}, fmt.Errorf(messages.InstallAppDirInvalidFmt, opts.AppDir, err)
	}
	log := o.Logger.With().Str("component", "install").Str("app_dir", appDir).Logger()

	lock, err := acquireLock(o.LockDir, appDir)
	if err != nil {
		return Outcome{State: o.state}, err
	}
	defer func() {
		if releaseErr := lock.release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	out := o.out()
	report := o.Preflight.CheckAll(ctx)
	outcome = Outcome{Report: report, DryRun: opts.DryRun}
	printReport(out, report)

	if report.Blocked {
		o.transition(log, PreflightFailed)
		outcome.State = o.state
		fatals := make([]string, 0, len(report.Messages))
		for _, result := range report.Fatals() {
			fatals = append(fatals, result.Message)
		}
		return outcome, &PreflightError{Messages: report.Messages, Fatals: fatals}
	}

	o.transition(log, Running)
	selected := plan.Select(opts.Install)
	outcome.Plan = selected
	log.Info().Str("plan", selected.String()).Msg("steps selected")

	resolved := make([]steps.Step, 0, selected.Len())
	for _, id := range selected.Steps() {
		step, ok := o.Steps.Lookup(id)
		if !ok {
			o.transition(log, StepFailed)
			outcome.State = o.state
			return outcome, &StepFailure{Step: id, Err: ErrStepNotRegistered}
		}
		resolved = append(resolved, step)
	}

	if opts.DryRun {
		_, _ = fmt.Fprintf(out, messages.InstallDryRunPlanFmt, selected.String())
		o.transition(log, Completed)
		outcome.State = o.state
		return outcome, nil
	}

	env := steps.Env{
		AppDir:       appDir,
		AppName:      opts.AppName,
		Options:      opts.Install,
		ServerBundle: opts.ServerBundle,
		Force:        opts.Force,
		DiffMaxLines: opts.DiffMaxLines,
		Out:          out,
		Logger:       log,
		System:       o.System,
	}
	for _, step := range resolved {
		id := step.ID()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return o.fail(log, outcome, id, ctxErr)
		}
		_, _ = fmt.Fprintf(out, messages.InstallStepHeaderFmt, id)
		log.Debug().Str("step", id.String()).Msg("applying step")
		if stepErr := step.Apply(ctx, env); stepErr != nil {
			return o.fail(log, outcome, id, stepErr)
		}
		outcome.Applied = append(outcome.Applied, id)
	}

	o.transition(log, Completed)
	outcome.State = o.state
	return outcome, nil
}

func (o *Orchestrator) fail(log zerolog.Logger, outcome Outcome, id plan.StepID, cause error) (Outcome, error) {
	o.transition(log, StepFailed)
	outcome.State = o.state
	log.Error().Err(cause).Str("step", id.String()).Int("applied", len(outcome.Applied)).Msg("step failed")
	return outcome, &StepFailure{Step: id, Err: cause}
}

func (o *Orchestrator) transition(log zerolog.Logger, next State) {
	log.Info().Str("from", o.state.String()).Str("to", next.String()).Msg("state transition")
	o.state = next
}

func (o *Orchestrator) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}

// printReport writes every non-passing check message in check order: fatal
// messages in red, advisories in yellow.
func printReport(out io.Writer, report preflight.Report) {
	fatal := color.New(color.FgRed)
	advisory := color.New(color.FgYellow)
	for _, result := range report.Results {
		switch result.Outcome {
		case preflight.Fatal:
			_, _ = fatal.Fprintln(out, result.Message)
		case preflight.Advisory:
			_, _ = advisory.Fprintln(out, result.Message)
		}
	}
}
