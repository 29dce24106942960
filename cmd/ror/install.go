package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/install"
	"github.com/conn-castle/ror-installer/internal/logging"
	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
	"github.com/conn-castle/ror-installer/internal/steps"
	"github.com/conn-castle/ror-installer/internal/wizard"
)

var newWizardUI = func() wizard.UI { return wizard.NewHuhUI() }

// installFlags holds the option flags shared by install and plan.
type installFlags struct {
	redux           bool
	noRedux         bool
	serverRendering bool
	noServer        bool
	skipJSLinters   bool
	rubyLinters     bool
}

func (f *installFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.redux, "redux", "R", false, messages.InstallFlagRedux)
	flags.BoolVar(&f.noRedux, "no-redux", false, messages.InstallFlagNoRedux)
	flags.BoolVarP(&f.serverRendering, "server-rendering", "S", false, messages.InstallFlagServerRendering)
	flags.BoolVar(&f.noServer, "no-server-rendering", false, messages.InstallFlagNoServer)
	flags.BoolVarP(&f.skipJSLinters, "skip-js-linters", "j", false, messages.InstallFlagSkipJSLinters)
	flags.BoolVarP(&f.rubyLinters, "ruby-linters", "L", false, messages.InstallFlagRubyLinters)
}

// resolve overlays explicitly set flags on the configured defaults.
func (f *installFlags) resolve(cmd *cobra.Command, defaults config.InstallConfig) (plan.Options, error) {
	opts := plan.Options{
		Redux:           defaults.Redux,
		ServerRendering: defaults.ServerRendering,
		SkipJSLinters:   defaults.SkipJSLinters,
		RubyLinters:     defaults.RubyLinters,
	}
	flags := cmd.Flags()
	var err error
	if opts.Redux, err = pairedFlag(cmd, "redux", "no-redux", f.redux, opts.Redux); err != nil {
		return opts, err
	}
	if opts.ServerRendering, err = pairedFlag(cmd, "server-rendering", "no-server-rendering", f.serverRendering, opts.ServerRendering); err != nil {
		return opts, err
	}
	if flags.Changed("skip-js-linters") {
		opts.SkipJSLinters = f.skipJSLinters
	}
	if flags.Changed("ruby-linters") {
		opts.RubyLinters = f.rubyLinters
	}
	return opts, nil
}

// pairedFlag resolves a --name / --no-name pair. Setting both is an error.
func pairedFlag(cmd *cobra.Command, name string, negated string, value bool, fallback bool) (bool, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed(name) && flags.Changed(negated):
		return fallback, fmt.Errorf(messages.InstallConflictingFlagsFmt, name, negated)
	case flags.Changed(name):
		return value, nil
	case flags.Changed(negated):
		return false, nil
	default:
		return fallback, nil
	}
}

func newInstallCmd(g *globalFlags) *cobra.Command {
	var (
		opts        installFlags
		force       bool
		dryRun      bool
		interactive bool
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir(optionalArg(args, 0))
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(appDir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				if timeout < 0 {
					return fmt.Errorf(messages.InstallNegativeTimeoutFmt, timeout)
				}
				cfg.CommandTimeout = timeout
			}
			selected, err := opts.resolve(cmd, cfg.Install)
			if err != nil {
				return err
			}
			if interactive {
				selected, err = wizard.Run(newWizardUI(), selected)
				if errors.Is(err, wizard.ErrCancelled) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.InstallCancelledNotice)
					return &SilentExitError{Code: 1}
				}
				if err != nil {
					return err
				}
			}

			logger, closeLog := g.startLogging(cmd)
			defer closeLog()
			if cfg.Source != "" {
				logger.Info().Str("config", cfg.Source).Msg("configuration loaded")
			}

			orch := &install.Orchestrator{
				Preflight: newChecker(appDir, cfg, logger),
				Steps:     steps.DefaultRegistry(),
				Out:       cmd.OutOrStdout(),
				Logger:    logging.For(logger, "install"),
			}
			outcome, err := orch.Run(cmd.Context(), install.Options{
				AppDir:       appDir,
				AppName:      filepath.Base(appDir),
				Install:      selected,
				Force:        force,
				DryRun:       dryRun,
				ServerBundle: serverBundle(cfg),
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outcome.DryRun {
				_, _ = fmt.Fprintf(out, messages.InstallDryRunCompleteFmt, outcome.Plan.Len())
				return nil
			}
			_, _ = fmt.Fprintf(out, messages.InstallCompleteFmt, outcome.Plan)
			return nil
		},
	}
	opts.register(cmd)
	flags := cmd.Flags()
	flags.BoolVarP(&force, "force", "f", false, messages.InstallFlagForce)
	flags.BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)
	flags.BoolVarP(&interactive, "interactive", "i", false, messages.InstallFlagInteractive)
	flags.DurationVar(&timeout, "timeout", config.DefaultCommandTimeout, messages.InstallFlagTimeout)
	return cmd
}
