package geo3d

import (
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 3D primitives.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.geo3d", &registry.Builtin{
		Name:   "sphere",
		Params: []argmatch.Parameter{argmatch.MustParameter("radius", value.Length, nil)},
		Fn:     registry.Primitive("sphere", "radius"),
	})
	r.RegisterBuiltin("std.geo3d", &registry.Builtin{
		Name:   "cube",
		Params: []argmatch.Parameter{argmatch.MustParameter("size", value.Length, nil)},
		Fn:     registry.Primitive("cube", "size"),
	})
	r.RegisterBuiltin("std.geo3d", &registry.Builtin{
		Name: "cylinder",
		Params: []argmatch.Parameter{
			argmatch.MustParameter("radius", value.Length, nil),
			argmatch.MustParameter("height", value.Length, nil),
		},
		Positional: true,
		Fn:         registry.Primitive("cylinder", "radius", "height"),
	})
}
