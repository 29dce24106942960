package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/ror-installer/internal/assets"
)

func TestBundlePath_GeneratedAssetsDir(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()

	stdout, _, err := runCLI(t, "bundle-path", "app-bundle.js", app)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "webpack", "production", "app-bundle.js")+"\n", stdout)
}

func TestBundlePath_Manifest(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(app, "public", "packs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "public", "packs", "manifest.json"),
		[]byte(`{"app-bundle.js": "/packs/app-bundle-1a2b.js"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(app, ".ror.toml"), []byte("[assets]\nuse_manifest = true\n"), 0o644))

	stdout, _, err := runCLI(t, "bundle-path", "app-bundle.js", app)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "packs", "app-bundle-1a2b.js")+"\n", stdout)

	// Names missing from the manifest fall back to the generated assets dir.
	stdout, _, err = runCLI(t, "bundle-path", "other.js", app)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "webpack", "production", "other.js")+"\n", stdout)
}

func TestBundlePath_NotConfigured(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(app, ".ror.toml"), []byte("[assets]\ngenerated_assets_dir = \"\"\n"), 0o644))

	_, _, err := runCLI(t, "bundle-path", "app-bundle.js", app)
	assert.ErrorIs(t, err, assets.ErrNotConfigured)
}

func TestBundlePath_MissingManifest(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(app, ".ror.toml"), []byte("[assets]\nuse_manifest = true\n"), 0o644))

	_, _, err := runCLI(t, "bundle-path", "app-bundle.js", app)
	assert.Error(t, err)
}

func TestBundlePath_ServerBundle(t *testing.T) {
	healthyHost(t)
	app := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(app, ".ror.toml"), []byte("[assets]\nserver_bundle_js_file = \"server-bundle.js\"\n"), 0o644))

	stdout, _, err := runCLI(t, "bundle-path", "--server", app)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "webpack", "production", "server-bundle.js")+"\n", stdout)
}

func TestBundlePath_ServerBundleNotConfigured(t *testing.T) {
	healthyHost(t)

	_, _, err := runCLI(t, "bundle-path", "--server", t.TempDir())
	assert.ErrorIs(t, err, assets.ErrNotConfigured)
}

func TestBundlePath_NameRequiredWithoutServer(t *testing.T) {
	healthyHost(t)

	_, _, err := runCLI(t, "bundle-path")
	assert.Error(t, err)
}
