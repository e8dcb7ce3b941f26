package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/pylaunch/debugs"
	"github.com/reusee/pylaunch/deps"
	"github.com/reusee/pylaunch/dispatch"
	"github.com/reusee/pylaunch/envs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/locks"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/procs"
	"github.com/reusee/pylaunch/wrappers"
)

type Step = procs.Proc[*State]

// Launch runs the whole launch sequence for args and returns the process exit status.
type Launch func(ctx context.Context, args []string) int

func (Module) Launch(
	steps Steps,
	newSpan logs.NewSpan,
	writer logs.Writer,
	logger logs.Logger,
) Launch {
	return func(ctx context.Context, args []string) int {
		ctx, _ = newSpan(ctx, "launch")
		state := &State{
			Context: ctx,
			Args:    args,
		}
		defer func() {
			if err := state.release(); err != nil {
				logger.WarnContext(ctx, "release lock", "error", err)
			}
		}()

		if err := procs.RunAll[*State](state, procs.Procs[*State](steps)); err != nil {
			fmt.Fprintf(writer, "pylaunch: %v\n", err)
			return ExitCode(err)
		}
		return state.ExitCode
	}
}

// Steps is the launch pipeline in execution order.
type Steps procs.Procs[*State]

func (Module) Steps(
	getSettings launchconfigs.GetSettings,
	root launchconfigs.ProjectRoot,
	ensureWrapper wrappers.EnsureWrapper,
	acquire locks.Acquire,
	ensureEnvironment envs.EnsureEnvironment,
	syncDependencies deps.SyncDependencies,
	tap debugs.Tap,
	dispatchTo dispatch.Dispatch,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Steps {

	step := func(name string, fn func(ctx context.Context, state *State) error) Step {
		return procs.Func[*State](func(state *State) (Step, error) {
			ctx, _ := newSpan(state.Context, name)
			if err := fn(ctx, state); err != nil {
				return nil, &StepError{
					Step: name,
					Err:  logs.WrapSpan(ctx, err),
				}
			}
			return nil, nil
		})
	}

	return Steps{

		step("args", func(ctx context.Context, state *State) (err error) {
			state.Invocation, err = dispatch.ParseArgs(state.Args)
			if err != nil {
				return err
			}
			logger.DebugContext(ctx, "invocation",
				"mode", state.Invocation.Mode,
				"force", state.Invocation.Force,
				"args", state.Invocation.Args,
			)
			return nil
		}),

		step("config", func(ctx context.Context, state *State) (err error) {
			state.Settings, err = getSettings()
			return
		}),

		step("wrapper", func(ctx context.Context, state *State) error {
			if state.Settings.Wrapper == "" {
				return nil
			}
			if _, err := ensureWrapper(ctx, state.Settings.Wrapper); err != nil {
				logger.ErrorContext(ctx, "wrapper bootstrap failed",
					"path", state.Settings.Wrapper,
					"error", err,
				)
			}
			return nil
		}),

		step("lock", func(ctx context.Context, state *State) (err error) {
			if !state.Settings.Lock {
				return nil
			}
			state.unlock, err = acquire(ctx, root.LockFile())
			if errors.Is(err, locks.ErrUnavailable) {
				logger.WarnContext(ctx, "running without lock", "error", err)
				return nil
			}
			return
		}),

		step("environment", func(ctx context.Context, state *State) (err error) {
			state.Env, err = ensureEnvironment(ctx)
			return
		}),

		step("dependencies", func(ctx context.Context, state *State) (err error) {
			state.Outcome, err = syncDependencies(ctx, state.Env, state.Settings.Manifest, state.Invocation.Force)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "dependencies", "outcome", state.Outcome)
			return nil
		}),

		step("unlock", func(ctx context.Context, state *State) error {
			return state.release()
		}),

		step("tap", func(ctx context.Context, state *State) error {
			manifestHash := func() string {
				hash, _, _ := deps.ManifestHash(state.Settings.Manifest)
				return hash
			}
			storedHash := func() string {
				hash, _ := deps.ReadStoredHash(deps.HashFile(state.Env))
				return hash
			}
			tap(ctx, "before dispatch", map[string]any{
				"root":          string(root),
				"settings":      state.Settings,
				"env":           state.Env,
				"invocation":    state.Invocation,
				"outcome":       state.Outcome,
				"manifest_hash": manifestHash,
				"stored_hash":   storedHash,
			})
			return nil
		}),

		step("dispatch", func(ctx context.Context, state *State) (err error) {
			state.ExitCode, err = dispatchTo(ctx, state.Invocation, state.Env)
			return
		}),
	}
}
