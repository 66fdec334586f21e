package geo2d

import (
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the 2D primitives.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.geo2d", &registry.Builtin{
		Name:   "circle",
		Params: []argmatch.Parameter{argmatch.MustParameter("radius", value.Length, nil)},
		Fn:     registry.Primitive("circle", "radius"),
	})
	r.RegisterBuiltin("std.geo2d", &registry.Builtin{
		Name: "rect",
		Params: []argmatch.Parameter{
			argmatch.MustParameter("width", value.Length, nil),
			argmatch.MustParameter("height", value.Length, nil),
		},
		Positional: true,
		Fn:         registry.Primitive("rect", "width", "height"),
	})
}
