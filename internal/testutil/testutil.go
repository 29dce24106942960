package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteStubWithOutput(t, dir, name, "", exitCode)
}

// WriteStubWithOutput writes an executable shell stub that prints stdout and exits with exitCode.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithOutput(t *testing.T, dir string, name string, stdout string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	if stdout != "" {
		fmt.Fprintf(&script, "printf '%%s\\n' '%s'\n", strings.ReplaceAll(stdout, "'", `'\''`))
	}
	fmt.Fprintf(&script, "exit %d\n", exitCode)
	if err := os.WriteFile(path, []byte(script.String()), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// PrependPath puts dir first on PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
