package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/logging"
	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/root"
)

var (
	getwd        = os.Getwd
	setupLogging = logging.Setup
)

// globalFlags are the persistent root flags shared by every subcommand.
type globalFlags struct {
	verbose    int
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", messages.RootVerboseUsage)
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", messages.RootConfigUsage)

	cmd.AddCommand(
		newInstallCmd(g),
		newDoctorCmd(g),
		newPlanCmd(g),
		newBundlePathCmd(g),
		newConfigCmd(g),
	)
	return cmd
}

// resolveAppDir returns the absolute app directory from an optional
// positional argument. Without one it is the nearest ancestor of the working
// directory holding a Gemfile, or the working directory itself.
func resolveAppDir(arg string) (string, error) {
	if arg == "" {
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf(messages.WorkingDirFailedFmt, err)
		}
		appRoot, found, err := root.FindAppRoot(wd)
		if err != nil {
			return "", err
		}
		if found {
			return appRoot, nil
		}
		return wd, nil
	}
	expanded, err := config.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.AppDirResolveFmt, arg, err)
	}
	return abs, nil
}

// optionalArg returns args[i] or "".
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (g *globalFlags) loadConfig(appDir string) (*config.Config, error) {
	path := g.configPath
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}
	return config.Load(appDir, path)
}

func (g *globalFlags) startLogging(cmd *cobra.Command) (zerolog.Logger, func()) {
	return setupLogging(g.verbose, cmd.ErrOrStderr())
}
