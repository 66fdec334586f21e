package eval

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/multiplicity"
	"github.com/specialistvlad/hclcad/internal/stack"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// call evaluates a call expression.
func (c *Context) call(x *syntax.Call) (value.Value, error) {
	sym, err := c.Lookup(x.Name)
	if err != nil {
		return value.None(), err
	}
	args, err := c.arguments(x.Args)
	if err != nil {
		return value.None(), err
	}

	def := sym.Definition()
	switch def.Kind {
	case symbol.KindBuiltin:
		return c.inCall(sym, args, x.Rng, false, func() (value.Value, error) {
			return def.Builtin.Call(c, args, x.Rng)
		})
	case symbol.KindFunction:
		return c.inCall(sym, args, x.Rng, true, func() (value.Value, error) {
			return c.callFunction(sym, def.Function, args)
		})
	case symbol.KindWorkbench:
		return c.inCall(sym, args, x.Rng, true, func() (value.Value, error) {
			return c.callWorkbench(sym, def.Workbench, args, x.Rng)
		})
	}
	return value.None(), &NotCallableError{Name: x.Name, Kind: def.Kind}
}

func (c *Context) arguments(in []*syntax.Argument) ([]argmatch.Argument, error) {
	out := make([]argmatch.Argument, 0, len(in))
	for _, a := range in {
		v, err := c.Expr(a.Expr)
		if err != nil {
			return nil, err
		}
		out = append(out, argmatch.Argument{ID: a.ID, Value: v, Rng: a.Rng})
	}
	return out, nil
}

// inCall runs f inside a call frame. Calls into user code also enter the
// namespace the callee is defined in, hiding the caller's locals.
func (c *Context) inCall(callee symbol.Symbol, args []argmatch.Argument, site hcl.Range, enter bool, f func() (value.Value, error)) (value.Value, error) {
	c.stack.Open(stack.CallFrame(callee, args, site))
	defer c.closeFrame()
	if enter {
		ns, _ := callee.Parent()
		c.stack.Open(stack.NamespaceFrame(ns))
		defer c.closeFrame()
	}

	v, err := f()
	if err != nil {
		return value.None(), &CallError{Callee: callee.String(), Site: site, Err: err}
	}
	return v, nil
}

// parameters evaluates declared parameters. Defaults are evaluated in the
// callee's scope.
func (c *Context) parameters(in []*syntax.Parameter) ([]argmatch.Parameter, error) {
	out := make([]argmatch.Parameter, 0, len(in))
	for _, p := range in {
		var def *value.Value
		if p.Default != nil {
			v, err := c.Expr(p.Default)
			if err != nil {
				return nil, err
			}
			def = &v
		}
		param, err := argmatch.NewParameter(p.ID, p.Type, def)
		if err != nil {
			return nil, err
		}
		out = append(out, param)
	}
	return out, nil
}

// multiply runs f once, or once per combination when list arguments were
// bound to scalar parameters.
func (c *Context) multiply(name string, tuple *argmatch.Tuple, params []argmatch.Parameter, f func(*argmatch.Tuple) (value.Value, error)) (value.Value, error) {
	if m, ok := multiplicity.New(tuple, params); ok {
		c.logger.Debug("Call multiplied.", "callee", name, "combinations", m.Len())
		return m.Call(f)
	}
	return f(tuple)
}

func (c *Context) bindLocals(t *argmatch.Tuple) error {
	for _, id := range t.Keys() {
		v := t.MustGet(id.Name)
		if err := c.stack.PutLocal(id, c.table.New(symbol.Argument(id, v), symbol.Private)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) callFunction(sym symbol.Symbol, fn *syntax.FunctionDefinition, args []argmatch.Argument) (value.Value, error) {
	params, err := c.parameters(fn.Params)
	if err != nil {
		return value.None(), err
	}
	tuple, err := argmatch.FindMatch(params, args)
	if err != nil {
		return value.None(), err
	}

	return c.multiply(sym.String(), tuple, params, func(t *argmatch.Tuple) (value.Value, error) {
		c.stack.Open(stack.FunctionFrame(sym))
		defer c.closeFrame()
		c.stack.Open(stack.BodyFrame())
		defer c.closeFrame()

		if err := c.bindLocals(t); err != nil {
			return value.None(), err
		}
		res, err := c.run(fn.Body)
		if err != nil {
			return value.None(), err
		}
		if !res.returned {
			return value.None(), nil
		}
		return res.ret, nil
	})
}

// callWorkbench matches the arguments against the workbench parameters and,
// failing that, against each init in turn. The first match builds the
// workpiece.
func (c *Context) callWorkbench(sym symbol.Symbol, wb *syntax.WorkbenchDefinition, args []argmatch.Argument, site hcl.Range) (value.Value, error) {
	params, err := c.parameters(wb.Params)
	if err != nil {
		return value.None(), err
	}

	tuple, matchErr := argmatch.FindMatch(params, args)
	if matchErr == nil {
		return c.multiply(sym.String(), tuple, params, func(t *argmatch.Tuple) (value.Value, error) {
			return c.build(sym, wb, params, t, nil, site)
		})
	}

	for i, init := range wb.Inits() {
		initParams, err := c.parameters(init.Params)
		if err != nil {
			return value.None(), err
		}
		t, err := argmatch.FindMatch(initParams, args)
		if err != nil {
			c.logger.Debug("Init does not match.", "workbench", sym.String(), "init", i, "error", err)
			continue
		}
		init := init
		return c.multiply(sym.String(), t, initParams, func(t *argmatch.Tuple) (value.Value, error) {
			return c.build(sym, wb, params, t, init, site)
		})
	}
	return value.None(), matchErr
}

// build creates one workpiece. With an init, args are the init arguments
// and the init body computes the workbench parameters.
func (c *Context) build(sym symbol.Symbol, wb *syntax.WorkbenchDefinition, params []argmatch.Parameter, args *argmatch.Tuple, init *syntax.InitDefinition, site hcl.Range) (value.Value, error) {
	h := c.models.New(model.KindWorkpiece, wb.ID.Name, site)
	c.stack.Open(stack.WorkbenchFrame(sym, h))
	defer c.closeFrame()

	bound := args
	if init != nil {
		var err error
		if bound, err = c.runInit(init, params, args); err != nil {
			return value.None(), err
		}
	}
	c.models.Node(h).Args = bound.Entries()

	c.stack.Open(stack.BodyFrame())
	defer c.closeFrame()
	if _, err := c.run(wb.Body); err != nil {
		return value.None(), err
	}
	return model.ValueOf(h), nil
}

// runInit runs an init body and collects the workbench parameters from the
// values it assigned, falling back to declared defaults.
func (c *Context) runInit(init *syntax.InitDefinition, params []argmatch.Parameter, args *argmatch.Tuple) (*argmatch.Tuple, error) {
	c.stack.Open(stack.InitFrame())
	defer c.closeFrame()

	if err := c.bindLocals(args); err != nil {
		return nil, err
	}
	if _, err := c.run(init.Body); err != nil {
		return nil, err
	}

	out := argmatch.NewTuple()
	var missing []string
	for _, p := range params {
		var v value.Value
		if local, ok := c.stack.Fetch(p.ID); ok {
			lv, err := local.Value()
			if err != nil {
				return nil, err
			}
			if v, err = value.Convert(value.WithUnit(lv, p.Type()), p.Type()); err != nil {
				return nil, err
			}
		} else if d, ok := p.DefaultValue(); ok {
			v = d
		} else {
			missing = append(missing, p.ID.Name)
			continue
		}
		if err := out.Insert(p.ID, v); err != nil {
			return nil, err
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &argmatch.MissingArgumentsError{Names: missing}
	}
	return out, nil
}
