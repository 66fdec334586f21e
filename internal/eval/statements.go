package eval

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/hclcad/internal/grant"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/stack"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// result is the outcome of running statements.
type result struct {
	// last is the value of the last expression statement.
	last     value.Value
	returned bool
	// ret is the value of a `return`.
	ret value.Value
}

// runTopLevel runs the statements of a source file or module. A failing
// statement is reported and the next one runs.
func (c *Context) runTopLevel(body *syntax.Body) value.Value {
	last := value.None()
	if body == nil {
		return last
	}
	for _, stmt := range body.Statements {
		res, err := c.statement(stmt)
		if err != nil {
			c.errorAt(stmt.Range(), err)
			continue
		}
		if !res.last.IsInvalid() {
			last = res.last
		}
	}
	return last
}

// run runs the statements of a nested body. It stops at the first error or
// at a `return`.
func (c *Context) run(body *syntax.Body) (result, error) {
	var res result
	if body == nil {
		return res, nil
	}
	for _, stmt := range body.Statements {
		r, err := c.statement(stmt)
		if err != nil {
			c.logTrace(err)
			return res, err
		}
		if !r.last.IsInvalid() {
			res.last = r.last
		}
		if r.returned {
			res.returned, res.ret = true, r.ret
			return res, nil
		}
	}
	return res, nil
}

func (c *Context) logTrace(err error) {
	var b strings.Builder
	if terr := c.stack.Trace(&b); terr != nil || b.Len() == 0 {
		return
	}
	c.logger.Debug("Statement failed.", "error", err, "trace", b.String())
}

// statement admits and runs a single statement. A refused statement is
// reported here and yields no error, so that its siblings still run.
func (c *Context) statement(stmt syntax.Statement) (result, error) {
	if err := grant.Check(c.stack, stmt); err != nil {
		c.errorAt(stmt.Range(), err)
		return result{}, nil
	}

	switch s := stmt.(type) {
	case *syntax.Assignment:
		return result{}, c.assignment(s)
	case *syntax.Return:
		v, err := c.Expr(s.Expr)
		if err != nil {
			return result{}, err
		}
		return result{returned: true, ret: v}, nil
	case *syntax.If:
		return c.ifStatement(s)
	case *syntax.Use:
		return result{}, c.use(s)
	case *syntax.ModuleDefinition:
		return result{}, c.module(s)
	case *syntax.ExpressionStatement:
		v, err := c.expressionStatement(s)
		return result{last: v}, err
	case *syntax.WorkbenchDefinition, *syntax.FunctionDefinition, *syntax.InitDefinition:
		// Definitions are symbols already; they run when called.
		return result{}, nil
	}
	return result{}, fmt.Errorf("unsupported statement %T", stmt)
}

func (c *Context) assignment(s *syntax.Assignment) error {
	v, err := c.Expr(s.Expr)
	if err != nil {
		return err
	}

	switch s.Qualifier {
	case syntax.QualifierValue:
		sym := c.table.New(symbol.Argument(s.ID, v), symbol.Private)
		return c.stack.PutLocal(s.ID, sym)
	case syntax.QualifierConst, syntax.QualifierPubConst:
		return c.constant(s, v)
	case syntax.QualifierProp:
		h, ok := c.stack.CurrentModel()
		if !ok {
			return &NoModelError{What: "prop assignment"}
		}
		c.models.SetProp(h, s.ID.Name, v)
		return nil
	}
	return nil
}

// constant stores v into the constant symbol of the current module. Constants
// nested in `if` bodies have no symbol yet and get one here.
func (c *Context) constant(s *syntax.Assignment, v value.Value) error {
	mod, ok := c.stack.CurrentModule()
	if !ok {
		return fmt.Errorf("no module for constant '%s'", s.ID)
	}
	sym, exists := mod.Child(s.ID)
	if !exists {
		vis := symbol.Private
		if s.Qualifier == syntax.QualifierPubConst {
			vis = symbol.Public
		}
		sym = c.table.New(symbol.Constant(s.ID, value.None(), s.Rng), vis)
		if err := c.table.AddChild(mod, sym); err != nil {
			return err
		}
	}
	if owner, _ := sym.Parent(); !owner.Same(mod) {
		return &symbol.DuplicateSymbolError{ID: s.ID, Namespace: mod.FullName()}
	}
	return sym.SetValue(v)
}

func (c *Context) ifStatement(s *syntax.If) (result, error) {
	cond, err := c.Expr(s.Cond)
	if err != nil {
		return result{}, err
	}
	if err := value.TypeCheck(cond, value.Bool); err != nil {
		return result{}, fmt.Errorf("if condition: %w", err)
	}
	b, _ := cond.AsBool()

	body := s.Then
	if !b {
		body = s.Else
	}
	if body == nil {
		return result{}, nil
	}

	c.stack.Open(stack.BodyFrame())
	defer c.closeFrame()
	return c.run(body)
}

// use imports into the locals of the current scope. Imports placed directly
// in source files and modules were resolved into the symbol table already.
func (c *Context) use(s *syntax.Use) error {
	if cur, ok := c.stack.Current(); ok && (cur.Kind == stack.FrameSource || cur.Kind == stack.FrameModule) {
		return nil
	}

	target, err := c.Lookup(s.Path)
	if err != nil {
		return err
	}
	if !s.All {
		return c.stack.PutLocal(s.LocalName(), target)
	}
	for _, child := range target.PublicChildren(symbol.Private) {
		if err := c.stack.PutLocal(child.ID(), child); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) module(s *syntax.ModuleDefinition) error {
	mod, ok := c.stack.CurrentModule()
	if !ok {
		return fmt.Errorf("no module for module '%s'", s.ID)
	}
	sym, ok := mod.Child(s.ID)
	if !ok || sym.Kind() != symbol.KindModule {
		return &symbol.SymbolNotFoundError{Name: mod.FullName().WithSuffix(s.ID)}
	}

	c.stack.Open(stack.ModuleFrame(sym))
	defer c.closeFrame()
	c.runTopLevel(s.Body)
	return nil
}

// expressionStatement evaluates the expression, decorates the produced
// models with the attributes and attaches them to the workpiece under
// construction, or to the roots outside of workbenches.
func (c *Context) expressionStatement(s *syntax.ExpressionStatement) (value.Value, error) {
	v, err := c.Expr(s.Expr)
	if err != nil {
		return value.None(), err
	}

	handles := model.Handles(v)
	c.attributes(s.Attributes, handles)

	parent, inWorkbench := c.stack.CurrentModel()
	for _, h := range handles {
		if c.models.Node(h).Parent != model.NoHandle {
			continue
		}
		if !inWorkbench {
			c.addRoot(h)
			continue
		}
		if err := c.models.AddChild(parent, h); err != nil {
			return value.None(), err
		}
	}
	return v, nil
}

func (c *Context) addRoot(h model.Handle) {
	for _, r := range c.roots {
		if r == h {
			return
		}
	}
	c.roots = append(c.roots, h)
}

func (c *Context) closeFrame() {
	if _, err := c.stack.Close(); err != nil {
		panic(fmt.Sprintf("eval: unbalanced stack: %v", err))
	}
}
