package deps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/pylaunch/envs"
	"github.com/reusee/pylaunch/execs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/nets"
)

var ErrInstallFailed = errors.New("install failed")

// HashFile is the stored hash sidecar inside the environment.
func HashFile(env envs.Handle) string {
	return filepath.Join(env.Dir, launchconfigs.HashFilename)
}

// SyncDependencies installs the manifest into the environment when its hash differs from the stored one,
// or when forced. The stored hash changes only after every install command succeeded.
type SyncDependencies func(ctx context.Context, env envs.Handle, manifestPath string, force bool) (Outcome, error)

func (Module) SyncDependencies(
	getSettings launchconfigs.GetSettings,
	root launchconfigs.ProjectRoot,
	run execs.Run,
	probeIndex nets.ProbeIndex,
	getProxyURL nets.GetProxyURL,
	proxyAddr nets.ProxyAddr,
	configuredProxy nets.ConfiguredProxyAddr,
	logger logs.Logger,
) SyncDependencies {
	return func(ctx context.Context, env envs.Handle, manifestPath string, force bool) (Outcome, error) {
		settings, err := getSettings()
		if err != nil {
			return 0, err
		}

		manifestHash, exists, err := ManifestHash(manifestPath)
		if err != nil {
			return 0, fmt.Errorf("%w: hash %s: %w", ErrInstallFailed, manifestPath, err)
		}
		if !exists {
			logger.WarnContext(ctx, "manifest not found, skipping dependency install",
				"path", manifestPath,
			)
			return WarnedNoManifest, nil
		}

		hashFile := HashFile(env)
		storedHash, _ := ReadStoredHash(hashFile)
		if !force && manifestHash == storedHash {
			logger.DebugContext(ctx, "dependencies up to date",
				"hash", manifestHash,
			)
			return Skipped, nil
		}

		logger.InfoContext(ctx, "installing dependencies",
			"manifest", manifestPath,
			"hash", manifestHash,
			"stored", storedHash,
			"force", force,
		)

		if settings.ProbeIndex {
			if err := probeIndex(ctx, settings.IndexURL); err != nil {
				logger.WarnContext(ctx, "package index unreachable", "error", err)
			}
		}

		var netArgs []string
		if settings.IndexURL != "" {
			netArgs = append(netArgs, "--index-url", settings.IndexURL)
		}
		// proxy credentials must stay out of argv
		cmdEnv := env.Environ(os.Environ())
		proxyURL, err := getProxyURL()
		switch {
		case err != nil && proxyAddr.FromEnv(configuredProxy):
			logger.WarnContext(ctx, "ignoring proxy from environment",
				"addr", nets.Redacted(proxyAddr),
				"error", err,
			)
		case err != nil:
			return 0, fmt.Errorf("%w: %w", ErrInstallFailed, err)
		case proxyURL != nil:
			cmdEnv = append(cmdEnv, "PIP_PROXY="+proxyURL.String())
		}

		var steps [][]string
		if settings.UpgradePip {
			steps = append(steps, append([]string{"-m", "pip", "install", "--upgrade", "pip"}, netArgs...))
		}
		install := []string{"-m", "pip", "install", "-r", manifestPath}
		install = append(install, settings.PipArgs...)
		install = append(install, netArgs...)
		steps = append(steps, install)

		for _, args := range steps {
			cmd := execs.Command{
				Name: env.Interpreter,
				Args: args,
				Dir:  string(root),
				Env:  cmdEnv,
			}
			code, err := run(ctx, cmd)
			if err != nil {
				return 0, fmt.Errorf("%w: %s: %w", ErrInstallFailed, cmd, err)
			}
			if code != 0 {
				return 0, fmt.Errorf("%w: %s exited with %d", ErrInstallFailed, cmd, code)
			}
		}

		if err := WriteStoredHash(hashFile, manifestHash); err != nil {
			return 0, fmt.Errorf("%w: write %s: %w", ErrInstallFailed, hashFile, err)
		}

		return Installed, nil
	}
}
