package dispatch

import (
	"slices"

	"github.com/reusee/pylaunch/cmds"
)

type Mode string

const (
	ModeGUI     Mode = "gui"
	ModeBackend Mode = "backend"
)

// Invocation is the launcher argument vector after the leading tokens are consumed.
type Invocation struct {
	Force bool
	Mode  Mode
	Args  []string
}

// ParseArgs consumes --force-install, --backend and --gui from the head of args, in any order,
// at most one force token and one mode token. Everything from the first other token on is forwarded verbatim.
func ParseArgs(args []string) (inv Invocation, err error) {
	inv.Mode = ModeGUI

	executor := cmds.NewExecutor()
	executor.Define("--force-install", cmds.Func(func() {
		inv.Force = true
	}).Once("force").Desc("reinstall dependencies even if the manifest is unchanged"))
	executor.Define("--backend", cmds.Func(func() {
		inv.Mode = ModeBackend
	}).Once("mode").Desc("run the backend program"))
	executor.Define("--gui", cmds.Func(func() {
		inv.Mode = ModeGUI
	}).Once("mode").Desc("run the GUI program (default)"))

	rest, err := executor.ExecuteLeading(args)
	if err != nil {
		return inv, err
	}
	inv.Args = slices.Clone(rest)
	return inv, nil
}
