package registry

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/multiplicity"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Module is the interface that all builtin modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Context is what a builtin may touch while it runs.
type Context interface {
	Models() *model.Tree
	Output() io.Writer
	Logger() *slog.Logger
}

// Func implements a builtin with a fixed parameter list.
type Func func(ctx Context, args *argmatch.Tuple, call hcl.Range) (value.Value, error)

// RawFunc implements a builtin that takes any arguments unmatched.
type RawFunc func(ctx Context, args []argmatch.Argument, call hcl.Range) (value.Value, error)

// Builtin is a function implemented in Go. Exactly one of Fn and Raw is set.
type Builtin struct {
	Name   string
	Params []argmatch.Parameter
	// Positional selects argmatch.FindMatchPositional, meant for builtins
	// whose parameters share a type, like `min(a, b)`.
	Positional bool
	Fn         Func
	Raw        RawFunc
}

// Call binds args and runs the builtin, once per combination when list
// arguments multiply the call.
func (b *Builtin) Call(ctx Context, args []argmatch.Argument, call hcl.Range) (value.Value, error) {
	if b.Raw != nil {
		return b.Raw(ctx, args, call)
	}

	match := argmatch.FindMatch
	if b.Positional {
		match = argmatch.FindMatchPositional
	}
	tuple, err := match(b.Params, args)
	if err != nil {
		return value.None(), err
	}

	fn := func(t *argmatch.Tuple) (value.Value, error) { return b.Fn(ctx, t, call) }
	if m, ok := multiplicity.New(tuple, b.Params); ok {
		ctx.Logger().Debug("Builtin call multiplied.", "builtin", b.Name, "combinations", m.Len())
		return m.Call(fn)
	}
	return fn(tuple)
}

// Entry is a registered builtin or constant with its full path.
type Entry struct {
	Path     ident.QualifiedName
	Builtin  *Builtin
	Constant value.Value
}

// Registry holds all builtins and constants of an application instance.
type Registry struct {
	entries []Entry
	paths   map[string]struct{}
	prelude []ident.QualifiedName
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{paths: make(map[string]struct{})}
}

func (r *Registry) add(namespace, name string, e Entry) {
	path := ident.MustParse(namespace).WithSuffix(ident.New(name))
	key := path.String()
	if _, exists := r.paths[key]; exists {
		panic(fmt.Sprintf("builtin '%s' already registered", key))
	}
	slog.Debug("Registering builtin.", "path", key)
	r.paths[key] = struct{}{}
	e.Path = path
	r.entries = append(r.entries, e)
}

// RegisterBuiltin adds b under namespace, e.g. `std.geo2d`.
func (r *Registry) RegisterBuiltin(namespace string, b *Builtin) {
	r.add(namespace, b.Name, Entry{Builtin: b})
}

// RegisterConstant adds a named constant under namespace.
func (r *Registry) RegisterConstant(namespace, name string, v value.Value) {
	r.add(namespace, name, Entry{Constant: v})
}

// RegisterPrelude marks namespace to be imported into every source file.
func (r *Registry) RegisterPrelude(namespace string) {
	r.prelude = append(r.prelude, ident.MustParse(namespace))
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry { return r.entries }

// Prelude returns the namespaces imported into every source file.
func (r *Registry) Prelude() []ident.QualifiedName { return r.prelude }
