package launch

import (
	"errors"

	"github.com/reusee/pylaunch/deps"
	"github.com/reusee/pylaunch/dispatch"
	"github.com/reusee/pylaunch/envs"
)

const (
	ExitEnvironmentCreationFailed = 120
	ExitInterpreterNotFound       = 121
	ExitInstallFailed             = 122
	ExitFailure                   = 125
	ExitDispatchFailed            = 127
)

// ExitCode maps a launcher failure to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, envs.ErrInterpreterNotFound):
		return ExitInterpreterNotFound
	case errors.Is(err, envs.ErrEnvironmentCreationFailed):
		return ExitEnvironmentCreationFailed
	case errors.Is(err, deps.ErrInstallFailed):
		return ExitInstallFailed
	case errors.Is(err, dispatch.ErrDispatchFailed):
		return ExitDispatchFailed
	}
	return ExitFailure
}

// StepError tags an error with the launch step that produced it.
type StepError struct {
	Step string
	Err  error
}

func (s *StepError) Error() string {
	return s.Step + ": " + s.Err.Error()
}

func (s *StepError) Unwrap() error {
	return s.Err
}
