package launch

import (
	"context"

	"github.com/reusee/pylaunch/deps"
	"github.com/reusee/pylaunch/dispatch"
	"github.com/reusee/pylaunch/envs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/locks"
)

// State is threaded through the launch steps.
type State struct {
	Context    context.Context
	Args       []string
	Invocation dispatch.Invocation
	Settings   launchconfigs.Settings
	Env        envs.Handle
	Outcome    deps.Outcome
	ExitCode   int

	unlock locks.Unlock
}

func (s *State) release() error {
	if s.unlock == nil {
		return nil
	}
	unlock := s.unlock
	s.unlock = nil
	return unlock()
}
