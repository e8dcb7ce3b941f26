package launch

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/debugs"
	"github.com/reusee/pylaunch/deps"
	"github.com/reusee/pylaunch/dispatch"
	"github.com/reusee/pylaunch/envs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/locks"
	"github.com/reusee/pylaunch/logs"
	"github.com/reusee/pylaunch/wrappers"
)

type Module struct {
	dscope.Module
	Configs  launchconfigs.Module
	Debugs   debugs.Module
	Deps     deps.Module
	Dispatch dispatch.Module
	Envs     envs.Module
	Locks    locks.Module
	Logs     logs.Module
	Wrappers wrappers.Module
}
