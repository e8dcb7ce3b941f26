package envs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/pylaunch/execs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
)

var (
	ErrEnvironmentCreationFailed = errors.New("environment creation failed")
	ErrInterpreterNotFound       = errors.New("interpreter not found")
)

// EnsureEnvironment creates the virtual environment if its directory is absent and reuses it otherwise.
// Nothing is ever deleted. The returned interpreter exists on success.
type EnsureEnvironment func(ctx context.Context) (Handle, error)

func (Module) EnsureEnvironment(
	getSettings launchconfigs.GetSettings,
	root launchconfigs.ProjectRoot,
	run execs.Run,
	logger logs.Logger,
) EnsureEnvironment {
	return func(ctx context.Context) (handle Handle, err error) {
		settings, err := getSettings()
		if err != nil {
			return handle, err
		}
		handle.Dir = settings.EnvDir
		handle.Interpreter = InterpreterPath(settings.EnvDir)

		stat, err := os.Stat(handle.Dir)
		switch {

		case err == nil && !stat.IsDir():
			return handle, fmt.Errorf("%w: %s exists and is not a directory", ErrEnvironmentCreationFailed, handle.Dir)

		case errors.Is(err, os.ErrNotExist):
			logger.InfoContext(ctx, "creating virtual environment",
				"dir", handle.Dir,
				"python", settings.Python,
			)
			code, err := run(ctx, execs.Command{
				Name: settings.Python,
				Args: []string{"-m", "venv", handle.Dir},
				Dir:  string(root),
			})
			if err != nil {
				return handle, fmt.Errorf("%w: %s: %w", ErrEnvironmentCreationFailed, handle.Dir, err)
			}
			if code != 0 {
				return handle, fmt.Errorf("%w: %s: %s -m venv exited with %d", ErrEnvironmentCreationFailed, handle.Dir, settings.Python, code)
			}

		case err != nil:
			return handle, fmt.Errorf("%w: %w", ErrEnvironmentCreationFailed, err)

		default:
			logger.DebugContext(ctx, "reuse virtual environment",
				"dir", handle.Dir,
			)
		}

		if _, err := os.Stat(handle.Interpreter); err != nil {
			return handle, fmt.Errorf("%w: expected %s", ErrInterpreterNotFound, handle.Interpreter)
		}

		return handle, nil
	}
}
