package app

import (
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/modules/debug"
	"github.com/specialistvlad/hclcad/modules/geo2d"
	"github.com/specialistvlad/hclcad/modules/geo3d"
	"github.com/specialistvlad/hclcad/modules/ops"
	"github.com/specialistvlad/hclcad/modules/print"
	"github.com/specialistvlad/hclcad/modules/stdmath"
	"github.com/specialistvlad/hclcad/modules/units"
)

// coreModules is the definitive list of all builtin modules that are
// compiled into the hclcad binary.
var coreModules = []registry.Module{
	&units.Module{},
	&stdmath.Module{},
	&debug.Module{},
	&print.Module{},
	&geo2d.Module{},
	&geo3d.Module{},
	&ops.Module{},
}
