package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/pylaunch/envs"
	"github.com/reusee/pylaunch/execs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
)

var ErrDispatchFailed = errors.New("dispatch failed")

// Dispatch runs the program selected by inv.Mode inside env and returns its exit code.
type Dispatch func(ctx context.Context, inv Invocation, env envs.Handle) (exitCode int, err error)

func (Module) Dispatch(
	getSettings launchconfigs.GetSettings,
	root launchconfigs.ProjectRoot,
	run execs.Run,
	logger logs.Logger,
) Dispatch {
	return func(ctx context.Context, inv Invocation, env envs.Handle) (int, error) {
		settings, err := getSettings()
		if err != nil {
			return -1, err
		}

		var target string
		switch inv.Mode {
		case ModeGUI, "":
			target = settings.Targets.GUI
		case ModeBackend:
			target = settings.Targets.Backend
		default:
			return -1, fmt.Errorf("%w: unknown mode %q", ErrDispatchFailed, inv.Mode)
		}

		if _, err := os.Stat(target); err != nil {
			return -1, fmt.Errorf("%w: %s target %s: %w", ErrDispatchFailed, inv.Mode, target, err)
		}

		cmd := execs.Command{
			Dir:    string(root),
			Env:    env.Environ(os.Environ()),
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if strings.EqualFold(filepath.Ext(target), ".py") {
			cmd.Name = env.Interpreter
			cmd.Args = append([]string{target}, inv.Args...)
		} else {
			cmd.Name = target
			cmd.Args = inv.Args
		}

		logger.InfoContext(ctx, "dispatch",
			"mode", inv.Mode,
			"target", target,
			"args", inv.Args,
		)
		code, err := run(ctx, cmd)
		if err != nil {
			return -1, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
		}
		logger.DebugContext(ctx, "exited",
			"mode", inv.Mode,
			"code", code,
		)
		return code, nil
	}
}
