// Package wizard prompts for install options interactively.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New(messages.WizardCancelled)

const (
	linterJS   = "js"
	linterRuby = "ruby"
)

// Run asks for every install option, starting from defaults, then shows the
// resulting plan and asks for confirmation. Declining returns ErrCancelled.
func Run(ui UI, defaults plan.Options) (plan.Options, error) {
	opts := defaults

	if err := ui.Confirm(messages.WizardReduxTitle, messages.WizardReduxDescription, &opts.Redux); err != nil {
		return defaults, err
	}
	if err := ui.Confirm(messages.WizardServerRenderingTitle, messages.WizardServerRenderingDescription, &opts.ServerRendering); err != nil {
		return defaults, err
	}

	var linters []string
	if !opts.SkipJSLinters {
		linters = append(linters, linterJS)
	}
	if opts.RubyLinters {
		linters = append(linters, linterRuby)
	}
	choices := []Choice{
		{Label: messages.WizardLinterJSLabel, Value: linterJS},
		{Label: messages.WizardLinterRubyLabel, Value: linterRuby},
	}
	if err := ui.MultiSelect(messages.WizardLintersTitle, choices, &linters); err != nil {
		return defaults, err
	}
	opts.SkipJSLinters = !slices.Contains(linters, linterJS)
	opts.RubyLinters = slices.Contains(linters, linterRuby)

	if err := ui.Note(messages.WizardPlanTitle, fmt.Sprintf(messages.WizardPlanBodyFmt, plan.Select(opts))); err != nil {
		return defaults, err
	}
	proceed := true
	if err := ui.Confirm(messages.WizardProceedTitle, "", &proceed); err != nil {
		return defaults, err
	}
	if !proceed {
		return defaults, ErrCancelled
	}
	return opts, nil
}
