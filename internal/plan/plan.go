// Package plan selects the ordered generation steps for an installation.
package plan

import "strings"

// Options are the resolved installer flags. The zero value selects every default.
type Options struct {
	Redux           bool
	ServerRendering bool
	SkipJSLinters   bool
	RubyLinters     bool
}

// StepID identifies one generation step.
type StepID int

// Steps in their fixed relative order. ReactNoRedux and ReactWithRedux are the
// two variants of the redux step; a plan holds exactly one of them.
const (
	Base StepID = iota + 1
	ReactNoRedux
	ReactWithRedux
	JSLinters
	RubyLinters
	Bootstrap
	HerokuDeployment
)

var stepNames = map[StepID]string{
	Base:             "base",
	ReactNoRedux:     "react_no_redux",
	ReactWithRedux:   "react_with_redux",
	JSLinters:        "js_linters",
	RubyLinters:      "ruby_linters",
	Bootstrap:        "bootstrap",
	HerokuDeployment: "heroku_deployment",
}

// AllSteps returns every step identifier in order.
func AllSteps() []StepID {
	return []StepID{Base, ReactNoRedux, ReactWithRedux, JSLinters, RubyLinters, Bootstrap, HerokuDeployment}
}

// String returns the snake_case step name.
func (id StepID) String() string {
	if name, ok := stepNames[id]; ok {
		return name
	}
	return "unknown"
}

// Plan is an immutable ordered list of steps.
type Plan struct {
	steps []StepID
}

// Steps returns a copy of the planned steps.
func (p Plan) Steps() []StepID {
	return append([]StepID(nil), p.steps...)
}

// Len returns the number of planned steps.
func (p Plan) Len() int {
	return len(p.steps)
}

// Contains reports whether id is planned.
func (p Plan) Contains(id StepID) bool {
	for _, step := range p.steps {
		if step == id {
			return true
		}
	}
	return false
}

// String joins the step names with " -> ".
func (p Plan) String() string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.String()
	}
	return strings.Join(names, " -> ")
}

// Select maps opts to the steps to run. Base is always first and
// HerokuDeployment always last; later steps extend files earlier ones write.
func Select(opts Options) Plan {
	steps := []StepID{Base}
	if opts.Redux {
		steps = append(steps, ReactWithRedux)
	} else {
		steps = append(steps, ReactNoRedux)
	}
	if !opts.SkipJSLinters {
		steps = append(steps, JSLinters)
	}
	if opts.RubyLinters {
		steps = append(steps, RubyLinters)
	}
	steps = append(steps, Bootstrap, HerokuDeployment)
	return Plan{steps: steps}
}
