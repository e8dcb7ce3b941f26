package launchconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/pylaunch/cmds"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/vars"
)

// ProjectRoot is the absolute directory every other path is relative to.
// It is fixed at start and passed explicitly, the launcher never changes its working directory.
type ProjectRoot string

var rootFlag = cmds.Var[string]("-root")

func init() {
	cmds.Describe("-root", "project root, defaults to $PYLAUNCH_ROOT or the working directory")
}

func (Module) ProjectRoot(
	logger logs.Logger,
) (ret ProjectRoot) {
	dir := vars.FirstNonZero(
		*rootFlag,
		os.Getenv("PYLAUNCH_ROOT"),
		".",
	)
	abs, err := filepath.Abs(dir)
	if err != nil {
		// only fails when the working directory is gone
		logger.Warn("resolve project root", "dir", dir, "error", err)
		abs = filepath.Clean(dir)
	}
	logger.Debug("project root", "path", abs)
	return ProjectRoot(abs)
}

func (r ProjectRoot) Join(elem ...string) string {
	return filepath.Join(append([]string{string(r)}, elem...)...)
}

// Resolve joins relative paths to the root and returns absolute ones unchanged.
func (r ProjectRoot) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return r.Join(path)
}
