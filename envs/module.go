package envs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/execs"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
)

type Module struct {
	dscope.Module
	Configs launchconfigs.Module
	Execs   execs.Module
	Logs    logs.Module
}
