package envs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Handle locates a provisioned virtual environment.
type Handle struct {
	Dir         string
	Interpreter string
}

func binDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

// InterpreterPath is where python -m venv puts the interpreter of an environment at dir.
func InterpreterPath(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

func (h Handle) BinDir() string {
	return filepath.Join(h.Dir, binDirName())
}

// Environ returns base with the environment activated: VIRTUAL_ENV set, the bin dir first in PATH,
// PYTHONHOME removed.
func (h Handle) Environ(base []string) []string {
	ret := make([]string, 0, len(base)+2)
	path := ""
	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")
		switch {
		case strings.EqualFold(key, "PATH"):
			path = value
			continue
		case key == "VIRTUAL_ENV", key == "PYTHONHOME":
			continue
		}
		ret = append(ret, kv)
	}
	if path == "" {
		path = h.BinDir()
	} else {
		path = h.BinDir() + string(os.PathListSeparator) + path
	}
	ret = append(ret,
		"VIRTUAL_ENV="+h.Dir,
		"PATH="+path,
	)
	return ret
}
