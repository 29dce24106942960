package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaultsMatchDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	if diff := cmp.Diff(Defaults(), *cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsDecodeBuiltInValues(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, []string{"node", "npm"}, cfg.Preflight.RequiredTools)
	assert.Equal(t, []string{"nvm"}, cfg.Preflight.OptionalTools)
	assert.Equal(t, "COVERAGE", cfg.Preflight.BypassEnv)
	assert.Equal(t, "public/webpack/production", cfg.Assets.GeneratedAssetsDir)
	assert.Empty(t, cfg.Source)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ror.toml"), `
command_timeout = "30s"

[install]
redux = true
skip_js_linters = true

[preflight]
required_tools = ["node", "yarn"]
min_node_version = "18.0.0"
`)
	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ror.toml"), cfg.Source)
	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	assert.True(t, cfg.Install.Redux)
	assert.True(t, cfg.Install.SkipJSLinters)
	assert.False(t, cfg.Install.RubyLinters)
	assert.Equal(t, []string{"node", "yarn"}, cfg.Preflight.RequiredTools)
	assert.Equal(t, []string{"nvm"}, cfg.Preflight.OptionalTools)
	assert.Equal(t, "18.0.0", cfg.Preflight.MinNodeVersion)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ror.yml"), "install:\n  ruby_linters: true\nassets:\n  use_manifest: true\n")
	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.True(t, cfg.Install.RubyLinters)
	assert.True(t, cfg.Assets.UseManifest)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ror.toml"), "command_timeout = \"30s\"\n[install]\nredux = false\n")
	t.Setenv("ROR_COMMAND_TIMEOUT", "5s")
	t.Setenv("ROR_INSTALL_REDUX", "true")
	t.Setenv("ROR_INSTALL_SKIP_JS_LINTERS", "1")
	t.Setenv("ROR_PREFLIGHT_OPTIONAL_TOOLS", "nvm,yarn")
	t.Setenv("ROR_UNKNOWN_SETTING", "ignored")

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.CommandTimeout)
	assert.True(t, cfg.Install.Redux)
	assert.True(t, cfg.Install.SkipJSLinters)
	assert.Equal(t, []string{"nvm", "yarn"}, cfg.Preflight.OptionalTools)
}

func TestLoadZeroTimeoutDisables(t *testing.T) {
	t.Setenv("ROR_COMMAND_TIMEOUT", "0s")
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.CommandTimeout)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[install]\nserver_rendering = true\n")
	cfg, err := Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Install.ServerRendering)

	_, err = Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidSyntax(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ror.toml"), "[install\n")
	_, err := Load(dir, "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigValidation))
}

func TestLoadValidationFailures(t *testing.T) {
	cases := map[string]string{
		"negative timeout": "command_timeout = \"-1s\"\n",
		"empty tool":       "[preflight]\nrequired_tools = [\"node\", \"\"]\n",
		"bad min version":  "[preflight]\nmin_node_version = \"latest\"\n",
		"manifest no path": "[assets]\nuse_manifest = true\nmanifest_path = \"\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, ".ror.toml"), content)
			_, err := Load(dir, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigValidation)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ror.toml"), path)

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, Defaults().Preflight, cfg.Preflight)

	_, err = WriteDefault(dir, false)
	assert.Error(t, err)
	_, err = WriteDefault(dir, true)
	assert.NoError(t, err)
}

func TestMarshalTOMLWritesDurationString(t *testing.T) {
	data, err := Defaults().MarshalTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "command_timeout")
	assert.Contains(t, string(data), "1m0s")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/apps/blog")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "apps", "blog"), got)

	got, err = ExpandPath("/srv/blog")
	require.NoError(t, err)
	assert.Equal(t, "/srv/blog", got)
}
