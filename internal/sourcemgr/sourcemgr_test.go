package sourcemgr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KennethDRoe/slang/internal/source"
)

func TestResolveUserThenSystemOrder(t *testing.T) {
	dir := t.TempDir()
	userDir := filepath.Join(dir, "user")
	sysDir := filepath.Join(dir, "sys")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(sysDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sysDir, "pkg.svh"), []byte("// sys"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := New(source.NewFileSet())
	if !m.AddUserDirectory(userDir) {
		t.Fatal("expected user dir to be added")
	}
	if !m.AddSystemDirectory(sysDir) {
		t.Fatal("expected system dir to be added")
	}

	resolved, ok := m.Resolve("pkg.svh", "")
	if !ok || resolved != filepath.Join(sysDir, "pkg.svh") {
		t.Fatalf("expected resolve to fall back to system dir, got %q ok=%v", resolved, ok)
	}

	if err := os.WriteFile(filepath.Join(userDir, "pkg.svh"), []byte("// user"), 0o644); err != nil {
		t.Fatal(err)
	}
	resolved, ok = m.Resolve("pkg.svh", "")
	if !ok || resolved != filepath.Join(userDir, "pkg.svh") {
		t.Fatalf("expected user dir to win, got %q ok=%v", resolved, ok)
	}
}

func TestAddDirectoryMissingReturnsFalse(t *testing.T) {
	m := New(source.NewFileSet())
	if m.AddUserDirectory("/does/not/exist/anywhere") {
		t.Fatal("expected missing directory to be rejected")
	}
}
