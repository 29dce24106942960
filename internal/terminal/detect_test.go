package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsInteractive(t *testing.T) {
	// The value depends on how tests are run; only verify it does not panic.
	_ = IsInteractive()
}

func TestIsTerminalWriterNonFile(t *testing.T) {
	if IsTerminalWriter(&bytes.Buffer{}) {
		t.Fatal("buffer must not be reported as a terminal")
	}
}

func TestIsTerminalWriterRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminalWriter(f) {
		t.Fatal("regular file must not be reported as a terminal")
	}
}
