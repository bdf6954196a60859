package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.vm")
	if err := os.WriteFile(path, []byte("push constant 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Resolve(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("got %v", files)
	}
}

func TestResolveRejectsNonVMFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(path); err == nil {
		t.Error("expected error for non-.vm file")
	}
}

func TestResolveDirectoryEnumeratesSortedVMFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Zebra.vm", "Alpha.vm", "skip.asm", "Middle.vm"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("push constant 0\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Resolve(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 .vm files, got %d: %v", len(files), files)
	}
	want := []string{"Alpha.vm", "Middle.vm", "Zebra.vm"}
	for i, f := range files {
		if filepath.Base(f) != want[i] {
			t.Errorf("file %d: want %s got %s", i, want[i], filepath.Base(f))
		}
	}
}

func TestResolveEmptyDirectoryErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Resolve(dir); err == nil {
		t.Error("expected error for directory with no .vm files")
	}
}

func TestFilePrefix(t *testing.T) {
	if got := FilePrefix("/a/b/Demo.vm"); got != "Demo" {
		t.Errorf("got %q", got)
	}
}
