// Package steps implements the generation steps applied by an installation.
// Steps are additive: every file is written only when missing unless forced, so
// re-running an interrupted install is safe.
package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
)

// Env is the context every step runs with.
type Env struct {
	// AppDir is the preflight-validated application root.
	AppDir string
	// AppName names generated packages; empty means the base name of AppDir.
	AppName string
	Options plan.Options
	// ServerBundle is the server bundle file written into the initializer.
	ServerBundle string
	// Force overwrites existing files that differ from the templates.
	Force bool
	// DiffMaxLines caps each skipped file's diff preview; zero means DefaultDiffMaxLines.
	DiffMaxLines int
	Out          io.Writer
	Logger       zerolog.Logger
	System       System
}

func (e Env) appName() string {
	if e.AppName != "" {
		return e.AppName
	}
	return filepath.Base(filepath.Clean(e.AppDir))
}

func (e Env) system() System {
	if e.System == nil {
		return RealSystem{}
	}
	return e.System
}

func (e Env) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

// Step is one unit of generation work.
type Step interface {
	ID() plan.StepID
	Apply(ctx context.Context, env Env) error
}

// Registry resolves step identifiers to implementations.
type Registry struct {
	steps map[plan.StepID]Step
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: make(map[plan.StepID]Step)}
}

// Register adds step. Registering the same identifier twice is an error.
func (r *Registry) Register(step Step) error {
	if step == nil {
		return errors.New(messages.StepsNilStep)
	}
	if _, exists := r.steps[step.ID()]; exists {
		return fmt.Errorf(messages.StepsDuplicateFmt, step.ID())
	}
	r.steps[step.ID()] = step
	return nil
}

// Lookup returns the step registered for id.
func (r *Registry) Lookup(id plan.StepID) (Step, bool) {
	step, ok := r.steps[id]
	return step, ok
}

// DefaultRegistry registers the built-in template steps for every StepID.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, step := range builtins() {
		r.mustRegister(step)
	}
	return r
}

// mustRegister panics on a registration error; built-in identifiers are unique.
func (r *Registry) mustRegister(step Step) {
	if err := r.Register(step); err != nil {
		panic(err)
	}
}

func builtins() []Step {
	return []Step{
		TemplateStep{StepID: plan.Base, Dir: "base", ManageGitignore: true},
		TemplateStep{StepID: plan.ReactNoRedux, Dir: "react_no_redux"},
		TemplateStep{StepID: plan.ReactWithRedux, Dir: "react_with_redux"},
		TemplateStep{StepID: plan.JSLinters, Dir: "js_linters"},
		TemplateStep{StepID: plan.RubyLinters, Dir: "ruby_linters"},
		TemplateStep{StepID: plan.Bootstrap, Dir: "bootstrap"},
		TemplateStep{StepID: plan.HerokuDeployment, Dir: "heroku_deployment"},
	}
}

// Func adapts a function into a Step.
type Func struct {
	StepID plan.StepID
	Fn     func(ctx context.Context, env Env) error
}

// ID returns the step identifier.
func (f Func) ID() plan.StepID { return f.StepID }

// Apply calls Fn.
func (f Func) Apply(ctx context.Context, env Env) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx, env)
}
