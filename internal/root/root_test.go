package root

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindAppRootFound(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, Marker), []byte("gem \"rails\"\n"), 0o644); err != nil {
		t.Fatalf("write Gemfile: %v", err)
	}
	sub := filepath.Join(root, "app", "models")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}

	got, found, err := FindAppRoot(sub)
	if err != nil {
		t.Fatalf("FindAppRoot error: %v", err)
	}
	if !found {
		t.Fatalf("expected root to be found")
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindAppRootMissing(t *testing.T) {
	root := t.TempDir()
	got, found, err := FindAppRoot(root)
	if err != nil {
		t.Fatalf("FindAppRoot error: %v", err)
	}
	if found && got == root {
		t.Fatalf("expected not found, got %s", got)
	}
	if found {
		t.Skipf("temp dir sits inside a Rails app at %s", got)
	}
}

func TestFindAppRootMarkerDirError(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, Marker), 0o755); err != nil {
		t.Fatalf("mkdir Gemfile: %v", err)
	}
	if _, _, err := FindAppRoot(root); err == nil {
		t.Fatalf("expected error for a Gemfile directory")
	}
}
