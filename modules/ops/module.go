package ops

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var zero = argmatch.Default(value.Mm(0))

// Translate wraps a model into a `translate` group carrying the offsets.
func Translate(ctx registry.Context, args *argmatch.Tuple, call hcl.Range) (value.Value, error) {
	h, _ := model.HandleOf(args.MustGet("model"))
	offsets := []value.NamedValue{
		{Name: "x", Value: args.MustGet("x")},
		{Name: "y", Value: args.MustGet("y")},
		{Name: "z", Value: args.MustGet("z")},
	}
	return registry.Group(ctx, "translate", offsets, []model.Handle{h}, call)
}

// Union groups a list of models.
func Union(ctx registry.Context, args *argmatch.Tuple, call hcl.Range) (value.Value, error) {
	return registry.Group(ctx, "union", nil, model.Handles(args.MustGet("models")), call)
}

// Register registers the model operations.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.ops", &registry.Builtin{
		Name: "translate",
		Params: []argmatch.Parameter{
			argmatch.MustParameter("model", value.Model, nil),
			argmatch.MustParameter("x", value.Length, zero),
			argmatch.MustParameter("y", value.Length, zero),
			argmatch.MustParameter("z", value.Length, zero),
		},
		Fn: Translate,
	})
	r.RegisterBuiltin("std.ops", &registry.Builtin{
		Name:   "union",
		Params: []argmatch.Parameter{argmatch.MustParameter("models", value.ListOf(value.Model), nil)},
		Fn:     Union,
	})
}
