// Package assets resolves the on-disk paths of compiled bundles.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// ErrNotConfigured is returned when neither a manifest entry nor a generated
// assets directory can locate a bundle.
var ErrNotConfigured = errors.New(messages.AssetsNotConfigured)

// Resolver maps bundle names to paths relative to the app root.
// UseManifest is decided once from configuration rather than probed per lookup.
type Resolver struct {
	GeneratedAssetsDir string
	ServerBundle       string
	UseManifest        bool
	// Manifest maps bundle names to hashed public paths such as "/packs/app-1a2b.js".
	Manifest map[string]string
	// PublicDir prefixes manifest paths; empty means "public".
	PublicDir string
}

// BundlePath returns the path of bundle name. A manifest hit wins over the
// generated assets directory.
func (r Resolver) BundlePath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New(messages.AssetsBundleNameRequired)
	}
	if r.UseManifest {
		if hashed, ok := r.Manifest[name]; ok && hashed != "" {
			return filepath.Join(r.publicDir(), filepath.FromSlash(strings.TrimPrefix(hashed, "/"))), nil
		}
	}
	if strings.TrimSpace(r.GeneratedAssetsDir) == "" {
		return "", fmt.Errorf(messages.AssetsBundleNotConfiguredFmt, name, ErrNotConfigured)
	}
	return filepath.Join(r.GeneratedAssetsDir, name), nil
}

// ServerRenderingEnabled reports whether a server bundle is configured.
func (r Resolver) ServerRenderingEnabled() bool {
	return strings.TrimSpace(r.ServerBundle) != ""
}

// ServerBundlePath returns the path of the configured server bundle.
func (r Resolver) ServerBundlePath() (string, error) {
	if !r.ServerRenderingEnabled() {
		return "", fmt.Errorf(messages.AssetsServerBundleNotConfiguredFmt, ErrNotConfigured)
	}
	return r.BundlePath(r.ServerBundle)
}

func (r Resolver) publicDir() string {
	if r.PublicDir == "" {
		return "public"
	}
	return r.PublicDir
}

// LoadManifest reads a JSON manifest mapping bundle names to public paths.
// Non-string values are ignored.
func LoadManifest(filename string) (map[string]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf(messages.AssetsManifestReadFailedFmt, filename, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(messages.AssetsManifestParseFailedFmt, filename, err)
	}
	manifest := make(map[string]string, len(raw))
	for name, value := range raw {
		if s, ok := value.(string); ok {
			manifest[name] = path.Clean("/" + strings.TrimPrefix(s, "/"))
		}
	}
	return manifest, nil
}
