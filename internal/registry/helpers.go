package registry

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Primitive returns a Func that records a primitive model named name with
// the bound arguments. Every argument listed in positive must be greater
// than zero.
func Primitive(name string, positive ...string) Func {
	return func(ctx Context, args *argmatch.Tuple, call hcl.Range) (value.Value, error) {
		for _, p := range positive {
			f, ok := args.MustGet(p).AsFloat()
			if !ok || f <= 0 {
				return value.None(), fmt.Errorf("%s: %s must be positive, got %s", name, p, args.MustGet(p))
			}
		}
		tree := ctx.Models()
		h := tree.New(model.KindPrimitive, name, call)
		tree.Node(h).Args = args.Entries()
		return model.ValueOf(h), nil
	}
}

// Group creates a group node named name holding models as children.
func Group(ctx Context, name string, args []value.NamedValue, models []model.Handle, call hcl.Range) (value.Value, error) {
	tree := ctx.Models()
	h := tree.New(model.KindGroup, name, call)
	tree.Node(h).Args = args
	for _, m := range models {
		if err := tree.AddChild(h, m); err != nil {
			return value.None(), err
		}
	}
	return model.ValueOf(h), nil
}
