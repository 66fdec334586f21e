package stdmath

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func unary(op func(value.Value) (value.Value, error)) registry.Func {
	return func(_ registry.Context, args *argmatch.Tuple, _ hcl.Range) (value.Value, error) {
		return op(args.MustGet("x"))
	}
}

func pick(wantLess bool) registry.Func {
	return func(_ registry.Context, args *argmatch.Tuple, _ hcl.Range) (value.Value, error) {
		a, b := args.MustGet("a"), args.MustGet("b")
		c, err := value.Compare(a, b)
		if err != nil {
			return value.None(), err
		}
		if (c <= 0) == wantLess {
			return a, nil
		}
		return b, nil
	}
}

func scalars(names ...string) []argmatch.Parameter {
	params := make([]argmatch.Parameter, 0, len(names))
	for _, n := range names {
		params = append(params, argmatch.MustParameter(n, value.Scalar, nil))
	}
	return params
}

// Register registers the math functions and constants.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.math", &registry.Builtin{Name: "sqrt", Params: scalars("x"), Positional: true, Fn: unary(value.Sqrt)})
	r.RegisterBuiltin("std.math", &registry.Builtin{Name: "abs", Params: scalars("x"), Positional: true, Fn: unary(value.Abs)})
	r.RegisterBuiltin("std.math", &registry.Builtin{Name: "min", Params: scalars("a", "b"), Positional: true, Fn: pick(true)})
	r.RegisterBuiltin("std.math", &registry.Builtin{Name: "max", Params: scalars("a", "b"), Positional: true, Fn: pick(false)})
	r.RegisterConstant("std.math", "pi", value.Float(math.Pi))
	r.RegisterPrelude("std.math")
}
