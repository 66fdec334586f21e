package eval

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/symbol"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Expr evaluates an expression in the current scope.
func (c *Context) Expr(e syntax.Expression) (value.Value, error) {
	switch x := e.(type) {
	case *syntax.Literal:
		return x.Value, nil
	case *syntax.Name:
		return c.name(x)
	case *syntax.Call:
		return c.call(x)
	case *syntax.ListExpr:
		items := make([]value.Value, 0, len(x.Items))
		for _, item := range x.Items {
			v, err := c.Expr(item)
			if err != nil {
				return value.None(), err
			}
			items = append(items, v)
		}
		return value.List(items...)
	case *syntax.TupleExpr:
		fields := make([]value.NamedValue, 0, len(x.Fields))
		for _, f := range x.Fields {
			v, err := c.Expr(f.Expr)
			if err != nil {
				return value.None(), err
			}
			fields = append(fields, value.NamedValue{Name: f.ID.Name, Value: v})
		}
		return value.Tuple(fields...)
	case *syntax.Binary:
		return c.binary(x)
	case *syntax.Unary:
		v, err := c.Expr(x.Operand)
		if err != nil {
			return value.None(), err
		}
		if x.Op == syntax.OpNot {
			return value.Not(v)
		}
		return value.Neg(v)
	case *syntax.Conditional:
		cond, err := c.condition(x.Cond)
		if err != nil {
			return value.None(), err
		}
		if cond {
			return c.Expr(x.True)
		}
		return c.Expr(x.False)
	case *syntax.Index:
		return c.index(x)
	case *syntax.Property:
		obj, err := c.Expr(x.Object)
		if err != nil {
			return value.None(), err
		}
		return c.property(obj, x.ID)
	case *syntax.Template:
		var b strings.Builder
		for _, part := range x.Parts {
			v, err := c.Expr(part)
			if err != nil {
				return value.None(), err
			}
			if s, ok := v.AsString(); ok {
				b.WriteString(s)
			} else {
				b.WriteString(v.String())
			}
		}
		return value.Str(b.String()), nil
	}
	return value.None(), fmt.Errorf("unsupported expression %T", e)
}

func (c *Context) condition(e syntax.Expression) (bool, error) {
	v, err := c.Expr(e)
	if err != nil {
		return false, err
	}
	if err := value.TypeCheck(v, value.Bool); err != nil {
		return false, fmt.Errorf("condition: %w", err)
	}
	b, _ := v.AsBool()
	return b, nil
}

// name evaluates a name. When the full name denotes nothing, a prefix may
// denote a value followed by property accesses, as in `ring.outer`.
func (c *Context) name(n *syntax.Name) (value.Value, error) {
	sym, err := c.Lookup(n.Name)
	if err == nil {
		return c.valueOf(sym, n.Name)
	}
	if !symbol.IsNotFound(err) || n.Name.IsSingle() {
		return value.None(), err
	}

	for i := len(n.Name) - 1; i > 0; i-- {
		prefix, lerr := c.Lookup(n.Name[:i])
		if lerr != nil || !prefix.Definition().IsValue() {
			continue
		}
		v, verr := c.valueOf(prefix, n.Name[:i])
		if verr != nil {
			return value.None(), verr
		}
		for _, id := range n.Name[i:] {
			if v, verr = c.property(v, id); verr != nil {
				return value.None(), verr
			}
		}
		return v, nil
	}
	return value.None(), err
}

func (c *Context) valueOf(sym symbol.Symbol, name ident.QualifiedName) (value.Value, error) {
	v, err := sym.Value()
	if err != nil {
		return value.None(), err
	}
	if v.IsInvalid() {
		return value.None(), &ValueNotAvailableError{Name: name}
	}
	return v, nil
}

// property reads a property of a model, a field of a tuple, or the property
// of every item of a list.
func (c *Context) property(v value.Value, id ident.Identifier) (value.Value, error) {
	switch v.Type().Kind() {
	case value.KindModel:
		h, _ := model.HandleOf(v)
		if p, ok := c.models.Prop(h, id.Name); ok {
			return p, nil
		}
		return value.None(), fmt.Errorf("model '%s' has no property '%s'", c.models.Node(h).Name, id)
	case value.KindTuple:
		if f, ok := v.Field(id.Name); ok {
			return f, nil
		}
		return value.None(), fmt.Errorf("tuple has no field '%s'", id)
	case value.KindList:
		items := make([]value.Value, 0, len(v.Items()))
		for _, item := range v.Items() {
			p, err := c.property(item, id)
			if err != nil {
				return value.None(), err
			}
			items = append(items, p)
		}
		return value.List(items...)
	}
	return value.None(), fmt.Errorf("%s has no property '%s'", v.Type(), id)
}

func (c *Context) index(x *syntax.Index) (value.Value, error) {
	coll, err := c.Expr(x.Collection)
	if err != nil {
		return value.None(), err
	}
	key, err := c.Expr(x.Key)
	if err != nil {
		return value.None(), err
	}

	if name, ok := key.AsString(); ok && coll.Type().Kind() == value.KindTuple {
		return c.property(coll, ident.New(name))
	}
	if coll.Type().Kind() != value.KindList {
		return value.None(), fmt.Errorf("cannot index %s", coll.Type())
	}
	i, ok := key.AsInt()
	if !ok || key.Type().Kind() != value.KindInteger {
		return value.None(), fmt.Errorf("list index must be an Integer, got %s", key.Type())
	}
	items := coll.Items()
	if i < 0 || int(i) >= len(items) {
		return value.None(), fmt.Errorf("index %d out of range for list of %d items", i, len(items))
	}
	return items[i], nil
}

func (c *Context) binary(x *syntax.Binary) (value.Value, error) {
	l, err := c.Expr(x.Left)
	if err != nil {
		return value.None(), err
	}

	switch x.Op {
	case syntax.OpAnd, syntax.OpOr:
		b, ok := l.AsBool()
		if !ok {
			return value.None(), &value.OperatorError{Op: x.Op.String(), Left: l.Type()}
		}
		if b == (x.Op == syntax.OpOr) {
			return value.Boolean(b), nil
		}
	}

	r, err := c.Expr(x.Right)
	if err != nil {
		return value.None(), err
	}

	switch x.Op {
	case syntax.OpAdd:
		return value.Add(l, r)
	case syntax.OpSub:
		return value.Sub(l, r)
	case syntax.OpMul:
		return value.Mul(l, r)
	case syntax.OpDiv:
		return value.Div(l, r)
	case syntax.OpMod:
		return value.Mod(l, r)
	case syntax.OpEq:
		return value.Boolean(equals(l, r)), nil
	case syntax.OpNotEq:
		return value.Boolean(!equals(l, r)), nil
	case syntax.OpAnd:
		return value.And(l, r)
	case syntax.OpOr:
		return value.Or(l, r)
	}

	cmp, err := value.Compare(l, r)
	if err != nil {
		return value.None(), err
	}
	switch x.Op {
	case syntax.OpLt:
		return value.Boolean(cmp < 0), nil
	case syntax.OpGt:
		return value.Boolean(cmp > 0), nil
	case syntax.OpLtEq:
		return value.Boolean(cmp <= 0), nil
	case syntax.OpGtEq:
		return value.Boolean(cmp >= 0), nil
	}
	return value.None(), fmt.Errorf("unsupported operator %s", x.Op)
}

// equals compares numbers across Integer and Scalar, everything else
// structurally.
func equals(a, b value.Value) bool {
	if cmp, err := value.Compare(a, b); err == nil {
		return cmp == 0
	}
	return a.Equal(b)
}
