// Package fsutil holds filesystem helpers shared by the installer packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// WriteFileAtomic writes data to a temp file next to filename and renames it into place,
// so readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFailedFmt, filename, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFailedFmt, filename, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFailedFmt, filename, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilWriteTempFailedFmt, filename, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodFailedFmt, filename, err)
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameFailedFmt, filename, err)
	}
	return nil
}
