package envs

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestEnviron(t *testing.T) {
	handle := Handle{
		Dir: filepath.Join("x", ".venv"),
	}
	env := handle.Environ([]string{
		"HOME=/home/u",
		"PATH=/usr/bin",
		"VIRTUAL_ENV=/other",
		"PYTHONHOME=/py",
	})
	want := []string{
		"HOME=/home/u",
		"VIRTUAL_ENV=" + handle.Dir,
		"PATH=" + handle.BinDir() + string(os.PathListSeparator) + "/usr/bin",
	}
	if !slices.Equal(env, want) {
		t.Fatalf("got %v", env)
	}

	env = handle.Environ(nil)
	if !slices.Contains(env, "PATH="+handle.BinDir()) {
		t.Fatalf("got %v", env)
	}
}
