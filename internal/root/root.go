// Package root locates the Rails application containing a directory.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// Marker is the file that identifies a Rails application root.
const Marker = "Gemfile"

// FindAppRoot walks up from start to the nearest directory holding a Gemfile.
// found is false when no ancestor has one. A Gemfile that is a directory is an error.
func FindAppRoot(start string) (root string, found bool, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.RootResolveFailedFmt, start, err)
	}
	for {
		candidate := filepath.Join(dir, Marker)
		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && info.IsDir():
			return "", false, fmt.Errorf(messages.RootMarkerIsDirFmt, candidate)
		case statErr == nil:
			return dir, true, nil
		case !errors.Is(statErr, os.ErrNotExist):
			return "", false, fmt.Errorf(messages.RootStatFailedFmt, candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
