package launchconfigs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/reusee/pylaunch/cmds"
	"github.com/reusee/pylaunch/configs"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/vars"
)

// Settings are the resolved launcher options. Paths are absolute.
type Settings struct {
	EnvDir     string
	Manifest   string
	Python     string
	UpgradePip bool
	PipArgs    []string
	IndexURL   string
	Targets    Targets
	Wrapper    string
	Lock       bool
	ProbeIndex bool
}

type Targets struct {
	GUI     string
	Backend string
}

const (
	DefaultEnvDir   = ".venv"
	DefaultManifest = "requirements.txt"
	HashFilename    = ".requirements.sha256"
	LockFilename    = ".pylaunch.lock"
	DefaultGUI      = "gui.py"
	DefaultBackend  = "umd2.py"
)

func DefaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

var (
	venvFlag     = cmds.Var[string]("-venv")
	manifestFlag = cmds.Var[string]("-manifest")
	pythonFlag   = cmds.Var[string]("-python")
	indexURLFlag = cmds.Var[string]("-index-url")
)

func init() {
	cmds.Describe("-venv", "virtual environment directory, relative to the project root")
	cmds.Describe("-manifest", "requirements file, relative to the project root")
	cmds.Describe("-python", "interpreter used to create the virtual environment")
	cmds.Describe("-index-url", "package index passed to pip")
}

// GetSettings resolves settings once. Config errors surface here instead of at scope construction.
type GetSettings func() (Settings, error)

func (Module) GetSettings(
	root ProjectRoot,
	loader configs.Loader,
	logger logs.Logger,
) GetSettings {
	return sync.OnceValues(func() (ret Settings, err error) {
		defer func() {
			if err == nil {
				logger.Debug("settings", "settings", ret)
			}
		}()

		if err := loader.Err(); err != nil {
			return ret, fmt.Errorf("load config: %w", err)
		}

		var (
			venv, manifest, python  string
			indexURL, wrapper       string
			upgradePip, lock, probe *bool
			pipArgs                 []string
			targets                 map[string]string
		)
		for _, entry := range []struct {
			path   string
			target any
		}{
			{"venv", &venv},
			{"manifest", &manifest},
			{"python", &python},
			{"upgrade_pip", &upgradePip},
			{"pip_args", &pipArgs},
			{"index_url", &indexURL},
			{"targets", &targets},
			{"wrapper", &wrapper},
			{"lock", &lock},
			{"probe_index", &probe},
		} {
			if err := loader.AssignFirst(entry.path, entry.target); err != nil &&
				!errors.Is(err, configs.ErrValueNotFound) {
				return ret, err
			}
		}

		ret.EnvDir = root.Resolve(vars.FirstNonZero(
			*venvFlag,
			venv,
			DefaultEnvDir,
		))
		ret.Manifest = root.Resolve(vars.FirstNonZero(
			*manifestFlag,
			manifest,
			DefaultManifest,
		))
		ret.Python = vars.FirstNonZero(
			*pythonFlag,
			python,
			os.Getenv("PYLAUNCH_PYTHON"),
			DefaultPython(),
		)
		ret.UpgradePip = upgradePip == nil || *upgradePip
		ret.PipArgs = pipArgs
		ret.IndexURL = vars.FirstNonZero(
			*indexURLFlag,
			indexURL,
		)
		ret.Targets = Targets{
			GUI:     root.Resolve(vars.FirstNonZero(targets["gui"], DefaultGUI)),
			Backend: root.Resolve(vars.FirstNonZero(targets["backend"], DefaultBackend)),
		}
		if wrapper != "" {
			ret.Wrapper, err = root.expandHome(wrapper)
			if err != nil {
				return ret, err
			}
		}
		ret.Lock = lock == nil || *lock
		ret.ProbeIndex = probe == nil || *probe

		return ret, nil
	})
}

func (r ProjectRoot) LockFile() string {
	return r.Join(LockFilename)
}

func (r ProjectRoot) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return r.Resolve(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
