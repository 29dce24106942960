package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_WritesAndRefusesOverwrite(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()

	stdout, _, err := runCLI(t, "config", "init", app)
	require.NoError(t, err)
	path := filepath.Join(app, ".ror.toml")
	assert.Equal(t, "Wrote "+path+"\n", stdout)
	assert.FileExists(t, path)

	_, _, err = runCLI(t, "config", "init", app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = runCLI(t, "config", "init", "--force", app)
	require.NoError(t, err)
}

func TestConfigShow_Defaults(t *testing.T) {
	healthyHost(t)

	stdout, _, err := runCLI(t, "config", "show", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "# source: built-in defaults and environment")
	assert.Contains(t, stdout, "command_timeout")
	assert.Contains(t, stdout, "1m0s")
}

func TestConfigShow_EnvOverride(t *testing.T) {
	healthyHost(t)
	t.Setenv("ROR_COMMAND_TIMEOUT", "30s")

	stdout, _, err := runCLI(t, "config", "show", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "30s")
}

func TestConfigShow_ExplicitConfigFlag(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()
	_, _, err := runCLI(t, "config", "init", app)
	require.NoError(t, err)
	path := filepath.Join(app, ".ror.toml")

	stdout, _, err := runCLI(t, "--config", path, "config", "show", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "# source: "+path)
}
