package wrappers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/reusee/pylaunch/files"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
)

var ErrWrapperMismatch = errors.New("wrapper content mismatch")

// LauncherPath is the executable the wrapper runs.
type LauncherPath string

func (Module) LauncherPath(
	logger logs.Logger,
) LauncherPath {
	path, err := os.Executable()
	if err != nil {
		logger.Warn("locate launcher executable", "error", err)
		return "pylaunch"
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return LauncherPath(path)
}

// EnsureWrapper makes the file at path hold the expected wrapper, rewriting it only when the content differs.
// On return with a nil error the file content is verified.
type EnsureWrapper func(ctx context.Context, path string) (changed bool, err error)

func (Module) EnsureWrapper(
	root launchconfigs.ProjectRoot,
	launcher LauncherPath,
	logger logs.Logger,
) EnsureWrapper {
	return func(ctx context.Context, path string) (changed bool, err error) {
		path = WrapperPath(path)
		expected := Content(runtime.GOOS, string(launcher), string(root))

		current, err := os.ReadFile(path)
		if err == nil && bytes.Equal(current, expected) {
			return false, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return false, err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return false, err
		}
		if err := files.WriteAtomic(path, expected, 0755); err != nil {
			return false, fmt.Errorf("write wrapper %s: %w", path, err)
		}

		written, err := os.ReadFile(path)
		if err != nil {
			return true, err
		}
		if !bytes.Equal(written, expected) {
			return true, fmt.Errorf("%w: %s", ErrWrapperMismatch, path)
		}

		logger.InfoContext(ctx, "wrapper installed",
			"path", path,
			"launcher", launcher,
		)
		return true, nil
	}
}
