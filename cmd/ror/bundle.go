package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ror-installer/internal/assets"
	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/messages"
)

func newBundlePathCmd(g *globalFlags) *cobra.Command {
	var server bool
	cmd := &cobra.Command{
		Use:   messages.BundlePathUse,
		Short: messages.BundlePathShort,
		Args: func(cmd *cobra.Command, args []string) error {
			if server {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			appDirArg := optionalArg(args, 1)
			if server {
				appDirArg = optionalArg(args, 0)
			}
			appDir, err := resolveAppDir(appDirArg)
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(appDir)
			if err != nil {
				return err
			}
			resolver, err := newResolver(appDir, cfg)
			if err != nil {
				return err
			}
			var bundle string
			if server {
				bundle, err = resolver.ServerBundlePath()
			} else {
				bundle, err = resolver.BundlePath(args[0])
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), bundle)
			return nil
		},
	}
	cmd.Flags().BoolVar(&server, "server", false, messages.BundlePathFlagServer)
	return cmd
}

// newResolver builds an asset resolver from configuration, reading the
// manifest up front when use_manifest is set.
func newResolver(appDir string, cfg *config.Config) (assets.Resolver, error) {
	resolver := assets.Resolver{
		GeneratedAssetsDir: cfg.Assets.GeneratedAssetsDir,
		ServerBundle:       cfg.Assets.ServerBundleJSFile,
		UseManifest:        cfg.Assets.UseManifest,
	}
	if !cfg.Assets.UseManifest {
		return resolver, nil
	}
	manifestPath := cfg.Assets.ManifestPath
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(appDir, manifestPath)
	}
	manifest, err := assets.LoadManifest(manifestPath)
	if err != nil {
		return resolver, err
	}
	resolver.Manifest = manifest
	return resolver, nil
}
