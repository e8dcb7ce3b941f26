package launchconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pylaunch/configs"
	"github.com/reusee/pylaunch/logs"
)

//go:embed schema.cue
var Schema string

var configFilenames = []string{
	"pylaunch.cue",
	".pylaunch.cue",
}

// ConfigsLoader loads config files from the project root, the user config dir and /etc, in that precedence.
func (Module) ConfigsLoader(
	root ProjectRoot,
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Debug("config file",
				"paths", paths,
			)
		}
	}()

	dirs := []string{
		string(root),
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "pylaunch"))
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
