package app

import (
	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/modules/docs"
	"github.com/specialistvlad/viewbind/modules/sample"
	"github.com/specialistvlad/viewbind/modules/shell"
)

// coreModules is the definitive list of all assemblies compiled into the
// viewbind binary, in default search order.
var coreModules = []registry.Module{
	&shell.Module{},
	&sample.Module{},
	&docs.Module{},
}

// defaultStartup is shown when no startup view-model is configured.
const defaultStartup = "Shell.ViewModels.ShellViewModel"
