package eval

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/diag"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/stack"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Context is the mutable state of one evaluation. It implements
// registry.Context for builtins.
type Context struct {
	ctx    context.Context
	logger *slog.Logger
	table  *symbol.Table
	stack  *stack.Stack
	models *model.Tree
	sink   *diag.Sink
	out    io.Writer

	// roots are the models produced outside of any workbench.
	roots []model.Handle
	// props caches one symbol per model property so that repeated lookups
	// of a property yield the same identity.
	props map[propKey]symbol.Symbol
}

type propKey struct {
	model model.Handle
	name  string
}

// New creates a context evaluating the root of table. Builtin output, e.g.
// from `print`, goes to out.
func New(ctx context.Context, table *symbol.Table, sink *diag.Sink, out io.Writer) *Context {
	c := &Context{
		ctx:    ctx,
		logger: ctxlog.FromContext(ctx),
		table:  table,
		stack:  stack.New(),
		models: model.NewTree(),
		sink:   sink,
		out:    out,
		props:  make(map[propKey]symbol.Symbol),
	}
	c.stack.Open(stack.SourceFrame(table.Root()))
	return c
}

func (c *Context) Models() *model.Tree   { return c.models }
func (c *Context) Output() io.Writer     { return c.out }
func (c *Context) Logger() *slog.Logger  { return c.logger }
func (c *Context) Stack() *stack.Stack   { return c.stack }
func (c *Context) Table() *symbol.Table  { return c.table }
func (c *Context) Roots() []model.Handle { return c.roots }

// EvalFile evaluates the statements of the root source file.
func (c *Context) EvalFile() {
	root := c.table.Root()
	file := root.Definition().File
	if file == nil {
		return
	}
	c.logger.Debug("Evaluating source file.", "file", file.Filename)
	c.runTopLevel(file.Body)
}

// EvalBody evaluates additional statements in the root scope and returns
// the value of the last expression statement. The interactive mode uses it
// for every input.
func (c *Context) EvalBody(body *syntax.Body) value.Value {
	return c.runTopLevel(body)
}

// ReportUnused logs every user defined symbol that was never looked up.
func (c *Context) ReportUnused() []symbol.Symbol {
	unused := c.table.Root().Unused()
	for _, s := range unused {
		c.logger.Debug("Unused symbol.", "symbol", s.String(), "kind", s.Kind().String())
	}
	return unused
}

func (c *Context) errorAt(rng hcl.Range, err error) {
	c.sink.Error(rng, err)
}

func (c *Context) warnAt(rng hcl.Range, err error) {
	c.sink.Warning(rng, err)
}
