package execs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/reusee/pylaunch/logs"
)

// Command describes one child process. Nil Stdout and Stderr inherit the launcher's streams,
// nil Stdin reads from the null device, nil Env inherits the launcher's environment.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c Command) String() string {
	return fmt.Sprintf("%q %q", c.Name, c.Args)
}

var ErrNotStarted = errors.New("command not started")

// Run starts the command and waits for it. A process that ran to completion reports its exit code with a nil error,
// whatever the code. Failing to start is reported as ErrNotStarted.
type Run func(ctx context.Context, cmd Command) (exitCode int, err error)

func (Module) Run(
	logger logs.Logger,
) Run {
	return func(ctx context.Context, cmd Command) (int, error) {
		c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
		c.Dir = cmd.Dir
		c.Env = cmd.Env
		c.Stdin = cmd.Stdin
		c.Stdout = cmd.Stdout
		if c.Stdout == nil {
			c.Stdout = os.Stdout
		}
		c.Stderr = cmd.Stderr
		if c.Stderr == nil {
			c.Stderr = os.Stderr
		}

		logger.DebugContext(ctx, "exec",
			"name", cmd.Name,
			"args", cmd.Args,
			"dir", cmd.Dir,
		)

		if err := c.Start(); err != nil {
			return -1, fmt.Errorf("%w: %s: %w", ErrNotStarted, cmd.Name, err)
		}

		err := c.Wait()
		if err == nil {
			return 0, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitCode(exitErr)
			logger.DebugContext(ctx, "exit",
				"name", cmd.Name,
				"code", code,
			)
			return code, nil
		}
		return -1, err
	}
}
