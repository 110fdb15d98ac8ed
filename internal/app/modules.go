package app

import (
	"github.com/specialistvlad/fanoutgo/internal/registry"
	"github.com/specialistvlad/fanoutgo/modules/clock"
	"github.com/specialistvlad/fanoutgo/modules/console"
	"github.com/specialistvlad/fanoutgo/modules/httppost"
	"github.com/specialistvlad/fanoutgo/modules/socketio"
	"github.com/specialistvlad/fanoutgo/modules/static"
)

// coreModules is the definitive list of all capability modules that are
// compiled into the fanoutgo binary.
var coreModules = []registry.Module{
	&clock.Module{},
	&static.Module{},
	&console.Module{},
	&httppost.Module{},
	&socketio.Module{},
}
