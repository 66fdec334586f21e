package debug

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// AssertionError is returned by a failed `assert`.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string   { return e.Message }
func (e *AssertionError) Summary() string { return "Assertion failed" }

// Assert fails with the given message when condition is false.
func Assert(ctx registry.Context, args *argmatch.Tuple, call hcl.Range) (value.Value, error) {
	ok, _ := args.MustGet("condition").AsBool()
	if ok {
		return value.None(), nil
	}
	msg, _ := args.MustGet("message").AsString()
	return value.None(), &AssertionError{Message: msg}
}

// Register registers the builtin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBuiltin("std.debug", &registry.Builtin{
		Name: "assert",
		Params: []argmatch.Parameter{
			argmatch.MustParameter("condition", value.Bool, nil),
			argmatch.MustParameter("message", value.String, argmatch.Default(value.Str("assertion failed"))),
		},
		Positional: true,
		Fn:         Assert,
	})
	r.RegisterPrelude("std.debug")
}
