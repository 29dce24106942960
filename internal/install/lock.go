package install

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// installLock is a cross-process lock keyed by the absolute app directory.
type installLock struct {
	path  string
	flock *flock.Flock
}

func lockPath(dir string, appDir string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	sum := sha256.Sum256([]byte(appDir))
	return filepath.Join(dir, "ror-install-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireLock takes the install lock without blocking. A lock held elsewhere
// yields ErrInstallInProgress.
func acquireLock(dir string, appDir string) (*installLock, error) {
	path := lockPath(dir, appDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.InstallLockDirFailedFmt, path, err)
	}
	l := &installLock{path: path, flock: flock.New(path)}
	acquired, err := l.flock.TryLock()
	if err != nil {
		return nil, fmt.Errorf(messages.InstallLockFailedFmt, path, err)
	}
	if !acquired {
		return nil, fmt.Errorf(messages.InstallLockHeldFmt, ErrInstallInProgress, appDir, path)
	}
	return l, nil
}

func (l *installLock) release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf(messages.InstallLockReleaseFailedFmt, l.path, err)
	}
	return nil
}
