package print

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Print writes its arguments, separated by spaces, to the run output. Named
// arguments are written as `name = value`.
func Print(ctx registry.Context, args []argmatch.Argument, call hcl.Range) (value.Value, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.IsNamed() {
			parts = append(parts, a.ID.Name+" = "+a.Value.String())
			continue
		}
		parts = append(parts, a.Value.String())
	}
	ctx.Logger().Debug("Printing values.", "count", len(args), "line", call.Start.Line)
	_, err := fmt.Fprintln(ctx.Output(), strings.Join(parts, " "))
	return value.None(), err
}

// Register registers the builtin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.debug", &registry.Builtin{Name: "print", Raw: Print})
}
