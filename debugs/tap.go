package debugs

import (
	"context"
	"maps"
	"os"
	"slices"

	"github.com/reusee/pylaunch/cmds"
	"github.com/reusee/pylaunch/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/term"
)

var tapFlag = cmds.Switch("-tap")

func init() {
	cmds.Describe("-tap", "open a starlark shell before running the program")
}

type TapEnabled bool

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}

// Interactive reports whether stdin is a terminal.
type Interactive func() bool

func (Module) Interactive() Interactive {
	return func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
}

type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	enabled TapEnabled,
	interactive Interactive,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		if !enabled {
			return
		}
		if !interactive() {
			logger.WarnContext(ctx, "stdin is not a terminal, tap skipped",
				"what", what,
			)
			return
		}

		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

func Globals(values map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(values))
	for name, value := range values {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
