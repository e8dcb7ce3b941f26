package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/launchconfigs"
	"github.com/reusee/pylaunch/logs"
)

type Module struct {
	dscope.Module
	Configs launchconfigs.Module
	Logs    logs.Module
}
