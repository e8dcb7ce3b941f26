package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")

	_, exists, err := ManifestHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal()
	}

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	hash, exists, err := ManifestHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal()
	}
	if hash != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("got %s", hash)
	}
}

func TestStoredHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".requirements.sha256")

	hash, ok := ReadStoredHash(path)
	if ok || hash != "" {
		t.Fatalf("got %q %v", hash, ok)
	}

	if err := WriteStoredHash(path, "abc"); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "abc\n" {
		t.Fatalf("got %q", content)
	}
	hash, ok = ReadStoredHash(path)
	if !ok || hash != "abc" {
		t.Fatalf("got %q %v", hash, ok)
	}

	if err := WriteStoredHash(path, "def"); err != nil {
		t.Fatal(err)
	}
	hash, _ = ReadStoredHash(path)
	if hash != "def" {
		t.Fatalf("got %q", hash)
	}

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %v", entries)
	}
}

func TestOutcomeString(t *testing.T) {
	if Installed.String() != "installed" || Skipped.String() != "skipped" {
		t.Fatal()
	}
}
