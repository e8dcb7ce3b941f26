package files

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo")

	if err := WriteAtomic(path, []byte("foo"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(path, []byte("bar"), 0755); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "bar" {
		t.Fatalf("got %s", content)
	}

	if runtime.GOOS != "windows" {
		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0755 {
			t.Fatalf("got %v", stat.Mode())
		}
	}

	// no temp files left
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %v", entries)
	}
}

func TestWriteAtomicNoDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "foo")
	if err := WriteAtomic(path, []byte("foo"), 0644); err == nil {
		t.Fatal("should fail")
	}
}
