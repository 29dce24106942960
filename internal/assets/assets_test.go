package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlePathManifestHit(t *testing.T) {
	r := Resolver{
		GeneratedAssetsDir: "public/webpack/production",
		UseManifest:        true,
		Manifest:           map[string]string{"app-bundle.js": "/packs/app-bundle-1a2b.js"},
	}
	got, err := r.BundlePath("app-bundle.js")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "packs", "app-bundle-1a2b.js"), got)
}

func TestBundlePathManifestMissFallsBack(t *testing.T) {
	r := Resolver{
		GeneratedAssetsDir: "public/webpack/production",
		UseManifest:        true,
		Manifest:           map[string]string{},
	}
	got, err := r.BundlePath("server-bundle.js")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public/webpack/production", "server-bundle.js"), got)
}

func TestBundlePathManifestDisabledIgnoresEntries(t *testing.T) {
	r := Resolver{
		GeneratedAssetsDir: "app/assets/webpack",
		Manifest:           map[string]string{"app-bundle.js": "/packs/app-bundle-1a2b.js"},
	}
	got, err := r.BundlePath("app-bundle.js")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("app/assets/webpack", "app-bundle.js"), got)
}

func TestBundlePathNotConfigured(t *testing.T) {
	_, err := Resolver{}.BundlePath("app-bundle.js")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Resolver{GeneratedAssetsDir: "x"}.BundlePath(" ")
	assert.Error(t, err)
}

func TestServerBundle(t *testing.T) {
	r := Resolver{GeneratedAssetsDir: "public/webpack/test"}
	assert.False(t, r.ServerRenderingEnabled())
	_, err := r.ServerBundlePath()
	assert.ErrorIs(t, err, ErrNotConfigured)

	r.ServerBundle = "server-bundle.js"
	assert.True(t, r.ServerRenderingEnabled())
	got, err := r.ServerBundlePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public/webpack/test", "server-bundle.js"), got)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app.js": "packs/app-9f.js", "count": 3}`), 0o644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"app.js": "/packs/app-9f.js"}, manifest)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = LoadManifest(path)
	assert.Error(t, err)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
