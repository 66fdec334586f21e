package hcl

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/zclconf/go-cty/cty"
)

var binaryOps = map[*hclsyntax.Operation]syntax.BinaryOp{
	hclsyntax.OpAdd:                syntax.OpAdd,
	hclsyntax.OpSubtract:           syntax.OpSub,
	hclsyntax.OpMultiply:           syntax.OpMul,
	hclsyntax.OpDivide:             syntax.OpDiv,
	hclsyntax.OpModulo:             syntax.OpMod,
	hclsyntax.OpEqual:              syntax.OpEq,
	hclsyntax.OpNotEqual:           syntax.OpNotEq,
	hclsyntax.OpLessThan:           syntax.OpLt,
	hclsyntax.OpGreaterThan:        syntax.OpGt,
	hclsyntax.OpLessThanOrEqual:    syntax.OpLtEq,
	hclsyntax.OpGreaterThanOrEqual: syntax.OpGtEq,
	hclsyntax.OpLogicalAnd:         syntax.OpAnd,
	hclsyntax.OpLogicalOr:          syntax.OpOr,
}

// invalid stands in for an expression that could not be translated. A
// diagnostic has already been recorded for it.
func invalid(rng hcl.Range) syntax.Expression {
	return &syntax.Literal{Value: value.None(), Rng: rng}
}

// expr translates a native HCL expression.
func (t *translator) expr(e hcl.Expression) syntax.Expression {
	switch v := e.(type) {
	case *hclsyntax.LiteralValueExpr:
		return t.literal(v.Val, v.SrcRange)

	case *hclsyntax.TemplateExpr:
		if v.IsStringLiteral() {
			val, _ := v.Value(nil)
			return &syntax.Literal{Value: value.Str(val.AsString()), Rng: v.SrcRange}
		}
		parts := make([]syntax.Expression, 0, len(v.Parts))
		for _, part := range v.Parts {
			parts = append(parts, t.expr(part))
		}
		return &syntax.Template{Parts: parts, Rng: v.SrcRange}

	case *hclsyntax.TemplateWrapExpr:
		return t.expr(v.Wrapped)

	case *hclsyntax.ParenthesesExpr:
		return t.expr(v.Expression)

	case *hclsyntax.ScopeTraversalExpr:
		return t.traversal(v.Traversal, v.SrcRange)

	case *hclsyntax.RelativeTraversalExpr:
		return t.relative(t.expr(v.Source), v.Traversal, v.SrcRange)

	case *hclsyntax.FunctionCallExpr:
		return t.call(v)

	case *hclsyntax.TupleConsExpr:
		items := make([]syntax.Expression, 0, len(v.Exprs))
		for _, item := range v.Exprs {
			items = append(items, t.expr(item))
		}
		return &syntax.ListExpr{Items: items, Rng: v.SrcRange}

	case *hclsyntax.ObjectConsExpr:
		return &syntax.TupleExpr{Fields: t.namedItems(v), Rng: v.SrcRange}

	case *hclsyntax.BinaryOpExpr:
		op, ok := binaryOps[v.Op]
		if !ok {
			t.errorf(v.SrcRange, "Unsupported operator", "This operator is not supported.")
			return invalid(v.SrcRange)
		}
		return &syntax.Binary{Op: op, Left: t.expr(v.LHS), Right: t.expr(v.RHS), Rng: v.SrcRange}

	case *hclsyntax.UnaryOpExpr:
		op := syntax.OpNeg
		if v.Op == hclsyntax.OpLogicalNot {
			op = syntax.OpNot
		}
		return &syntax.Unary{Op: op, Operand: t.expr(v.Val), Rng: v.SrcRange}

	case *hclsyntax.ConditionalExpr:
		return &syntax.Conditional{
			Cond:  t.expr(v.Condition),
			True:  t.expr(v.TrueResult),
			False: t.expr(v.FalseResult),
			Rng:   v.SrcRange,
		}

	case *hclsyntax.IndexExpr:
		return &syntax.Index{Collection: t.expr(v.Collection), Key: t.expr(v.Key), Rng: v.SrcRange}
	}

	ctxlog.FromContext(t.ctx).Debug("Unsupported expression.", "type", fmt.Sprintf("%T", e))
	t.errorf(e.Range(), "Unsupported expression", "This kind of expression is not supported.")
	return invalid(e.Range())
}

// literal translates a constant. Numbers written without a fraction or an
// exponent are integers.
func (t *translator) literal(val cty.Value, rng hcl.Range) syntax.Expression {
	if val.IsNull() {
		return &syntax.Literal{Value: value.None(), Rng: rng}
	}

	switch val.Type() {
	case cty.Bool:
		return &syntax.Literal{Value: value.Boolean(val.True()), Rng: rng}
	case cty.String:
		return &syntax.Literal{Value: value.Str(val.AsString()), Rng: rng}
	case cty.Number:
		bf := val.AsBigFloat()
		if t.isIntegerText(rng) && bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return &syntax.Literal{Value: value.Int(i), Rng: rng}
			}
		}
		f, _ := bf.Float64()
		return &syntax.Literal{Value: value.Float(f), Rng: rng}
	}

	t.errorf(rng, "Unsupported literal", "Literals of type %s are not supported.", val.Type().FriendlyName())
	return invalid(rng)
}

func (t *translator) isIntegerText(rng hcl.Range) bool {
	if rng.End.Byte > len(t.src) || rng.Start.Byte >= rng.End.Byte {
		return false
	}
	return !bytes.ContainsAny(t.src[rng.Start.Byte:rng.End.Byte], ".eE")
}

// traversal translates `a.b.c[0].d`. The leading run of attribute steps
// forms a qualified name, anything after an index is a property access.
func (t *translator) traversal(tr hcl.Traversal, rng hcl.Range) syntax.Expression {
	root, ok := tr[0].(hcl.TraverseRoot)
	if !ok {
		t.errorf(rng, "Invalid reference", "A reference must start with a name.")
		return invalid(rng)
	}

	name := ident.QualifiedName{ident.NewAt(root.Name, root.SrcRange)}
	rest := tr[1:]
	for len(rest) > 0 {
		attr, ok := rest[0].(hcl.TraverseAttr)
		if !ok {
			break
		}
		name = append(name, ident.NewAt(attr.Name, attr.SrcRange))
		rest = rest[1:]
	}

	var out syntax.Expression = &syntax.Name{Name: name, Rng: hcl.RangeBetween(root.SrcRange, name.Range())}
	return t.relative(out, rest, rng)
}

// relative applies attribute and index steps to an expression.
func (t *translator) relative(out syntax.Expression, tr hcl.Traversal, rng hcl.Range) syntax.Expression {
	for _, step := range tr {
		stepRng := hcl.RangeBetween(out.Range(), step.SourceRange())
		switch s := step.(type) {
		case hcl.TraverseAttr:
			out = &syntax.Property{Object: out, ID: ident.NewAt(s.Name, s.SrcRange), Rng: stepRng}
		case hcl.TraverseIndex:
			out = &syntax.Index{Collection: out, Key: t.literal(s.Key, s.SrcRange), Rng: stepRng}
		default:
			t.errorf(step.SourceRange(), "Unsupported traversal", "Splat and other traversal steps are not supported.")
			return invalid(rng)
		}
	}
	return out
}

// call translates `name(args...)`. A trailing object literal supplies the
// named arguments.
func (t *translator) call(v *hclsyntax.FunctionCallExpr) syntax.Expression {
	rng := v.Range()
	name, err := ident.Parse(v.Name)
	if err != nil {
		t.errorf(v.NameRange, "Invalid function name", "%s.", err)
		return invalid(rng)
	}
	for i := range name {
		name[i].Src = v.NameRange
	}
	if v.ExpandFinal {
		t.errorf(rng, "Unsupported argument expansion", "Argument expansion with \"...\" is not supported.")
		return invalid(rng)
	}

	call := &syntax.Call{Name: name, Rng: rng}
	args := v.Args
	var named []*syntax.Argument
	if n := len(args); n > 0 {
		if obj, ok := args[n-1].(*hclsyntax.ObjectConsExpr); ok {
			named = t.namedItems(obj)
			args = args[:n-1]
		}
	}
	for _, a := range args {
		call.Args = append(call.Args, &syntax.Argument{Expr: t.expr(a), Rng: a.Range()})
	}
	call.Args = append(call.Args, named...)
	return call
}

// namedItems translates the items of an object literal into named
// arguments. Keys must be bare identifiers or string literals.
func (t *translator) namedItems(obj *hclsyntax.ObjectConsExpr) []*syntax.Argument {
	var out []*syntax.Argument
	seen := make(map[string]bool, len(obj.Items))
	for _, item := range obj.Items {
		key := hcl.ExprAsKeyword(item.KeyExpr)
		if key == "" {
			if val, diags := item.KeyExpr.Value(nil); !diags.HasErrors() && val.Type() == cty.String && val.IsKnown() && !val.IsNull() {
				key = val.AsString()
			}
		}
		if !ident.IsValid(key) {
			t.errorf(item.KeyExpr.Range(), "Invalid argument name", "Argument names must be identifiers.")
			continue
		}
		if seen[key] {
			t.errorf(item.KeyExpr.Range(), "Duplicate argument", "Argument %q is given more than once.", key)
			continue
		}
		seen[key] = true
		out = append(out, &syntax.Argument{
			ID:   ident.NewAt(key, item.KeyExpr.Range()),
			Expr: t.expr(item.ValueExpr),
			Rng:  hcl.RangeBetween(item.KeyExpr.Range(), item.ValueExpr.Range()),
		})
	}
	return out
}
