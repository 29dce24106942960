// Package config loads installer settings from defaults, an app-level config
// file, and ROR_ environment variables, in that order of precedence.
package config

import (
	"time"
)

// Config is the resolved installer configuration.
type Config struct {
	Install        InstallConfig   `koanf:"install" toml:"install"`
	CommandTimeout time.Duration   `koanf:"command_timeout" toml:"command_timeout"`
	Preflight      PreflightConfig `koanf:"preflight" toml:"preflight"`
	Assets         AssetsConfig    `koanf:"assets" toml:"assets"`

	// Source is the config file that was loaded, empty when none was found.
	Source string `koanf:"-" toml:"-"`
}

// InstallConfig holds the default install options; CLI flags override them.
type InstallConfig struct {
	Redux           bool `koanf:"redux" toml:"redux"`
	ServerRendering bool `koanf:"server_rendering" toml:"server_rendering"`
	SkipJSLinters   bool `koanf:"skip_js_linters" toml:"skip_js_linters"`
	RubyLinters     bool `koanf:"ruby_linters" toml:"ruby_linters"`
}

// PreflightConfig selects the environment checks.
type PreflightConfig struct {
	RequiredTools  []string `koanf:"required_tools" toml:"required_tools"`
	OptionalTools  []string `koanf:"optional_tools" toml:"optional_tools"`
	MinNodeVersion string   `koanf:"min_node_version" toml:"min_node_version"`
	BypassEnv      string   `koanf:"bypass_env" toml:"bypass_env"`
	CleanMarkers   []string `koanf:"clean_markers" toml:"clean_markers"`
}

// AssetsConfig locates compiled bundles.
type AssetsConfig struct {
	GeneratedAssetsDir string `koanf:"generated_assets_dir" toml:"generated_assets_dir"`
	ServerBundleJSFile string `koanf:"server_bundle_js_file" toml:"server_bundle_js_file"`
	UseManifest        bool   `koanf:"use_manifest" toml:"use_manifest"`
	ManifestPath       string `koanf:"manifest_path" toml:"manifest_path"`
}

// DefaultCommandTimeout bounds each external command unless configured otherwise.
const DefaultCommandTimeout = 60 * time.Second

// defaultValues is the lowest configuration layer. Every key must appear here
// so environment variables can be mapped back to it.
func defaultValues() map[string]any {
	return map[string]any{
		"install.redux":                false,
		"install.server_rendering":     false,
		"install.skip_js_linters":      false,
		"install.ruby_linters":         false,
		"command_timeout":              DefaultCommandTimeout.String(),
		"preflight.required_tools":     []string{"node", "npm"},
		"preflight.optional_tools":     []string{"nvm"},
		"preflight.min_node_version":   "",
		"preflight.bypass_env":         "COVERAGE",
		"preflight.clean_markers":      []string{"nothing to commit, working directory clean"},
		"assets.generated_assets_dir":  "public/webpack/production",
		"assets.server_bundle_js_file": "",
		"assets.use_manifest":          false,
		"assets.manifest_path":         "public/packs/manifest.json",
	}
}
