package units

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// unit returns a builtin turning a number into a quantity of type t, scaled
// by factor into base units.
func unit(name string, t value.Type, factor float64) *registry.Builtin {
	return &registry.Builtin{
		Name:       name,
		Params:     []argmatch.Parameter{argmatch.MustParameter("x", value.Scalar, nil)},
		Positional: true,
		Fn: func(_ registry.Context, args *argmatch.Tuple, _ hcl.Range) (value.Value, error) {
			f, _ := args.MustGet("x").AsFloat()
			return value.Quantity(f*factor, t), nil
		},
	}
}

// Register registers the unit constructors.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.units", unit("mm", value.Length, 1))
	r.RegisterBuiltin("std.units", unit("cm", value.Length, 10))
	r.RegisterBuiltin("std.units", unit("m", value.Length, 1000))
	r.RegisterBuiltin("std.units", unit("deg", value.Angle, math.Pi/180))
	r.RegisterBuiltin("std.units", unit("rad", value.Angle, 1))
	r.RegisterPrelude("std.units")
}
