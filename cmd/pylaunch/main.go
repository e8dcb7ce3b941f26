package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/cmds"
	"github.com/reusee/pylaunch/launch"
	"github.com/reusee/pylaunch/modes"
)

// Command line arguments belong to the launched program.
// Launcher options are read from $PYLAUNCH_FLAGS, for example PYLAUNCH_FLAGS="-log-debug -root /opt/umd2".
const flagsEnv = "PYLAUNCH_FLAGS"

func main() {
	if err := cmds.ExecuteEnv(flagsEnv); err != nil {
		fmt.Fprintf(os.Stderr, "pylaunch: flags: %v\n", err)
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(launch.ExitFailure)
	}

	code := 0
	dscope.New(
		new(launch.Module),
		modes.ForProduction(),
	).Call(func(
		run launch.Launch,
	) {
		code = run(context.Background(), os.Args[1:])
	})
	os.Exit(code)
}
