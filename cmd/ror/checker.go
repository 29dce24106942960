package main

import (
	"github.com/rs/zerolog"

	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/logging"
	"github.com/conn-castle/ror-installer/internal/preflight"
	"github.com/conn-castle/ror-installer/internal/procrun"
	"github.com/conn-castle/ror-installer/internal/versions"
)

// defaultServerBundle is written into the initializer when server rendering
// is enabled and no bundle is configured.
const defaultServerBundle = "server-bundle.js"

// newRunner builds the process runner for appDir. Tests replace it.
var newRunner = func(appDir string, cfg *config.Config) procrun.Runner {
	return procrun.ExecRunner{Dir: appDir, Timeout: cfg.CommandTimeout}
}

func preflightConfig(cfg *config.Config) preflight.Config {
	pc := preflight.Config{
		RequiredTools: cfg.Preflight.RequiredTools,
		OptionalTools: cfg.Preflight.OptionalTools,
		BypassEnv:     cfg.Preflight.BypassEnv,
		CleanMarkers:  cfg.Preflight.CleanMarkers,
		LookupCommand: preflight.DefaultLookupCommand(),
	}
	if cfg.Preflight.MinNodeVersion != "" {
		pc.MinVersions = map[string]string{"node": cfg.Preflight.MinNodeVersion}
	}
	return pc
}

func newChecker(appDir string, cfg *config.Config, logger zerolog.Logger) *preflight.Checker {
	return &preflight.Checker{
		Runner: newRunner(appDir, cfg),
		System: preflight.RealSystem{},
		Cache:  versions.NewCache(),
		Config: preflightConfig(cfg),
		Logger: logging.For(logger, "preflight"),
	}
}

func serverBundle(cfg *config.Config) string {
	if cfg.Assets.ServerBundleJSFile != "" {
		return cfg.Assets.ServerBundleJSFile
	}
	return defaultServerBundle
}
