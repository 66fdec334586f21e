package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *syntax.SourceFile {
	t.Helper()
	sf, diags := NewParser().ParseSource(ctxlog.Discard(context.Background()), []byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags)
	return sf
}

func TestParse_StatementOrder(t *testing.T) {
	sf := parse(t, `
b = 2
use "std.geo2d.*" {}
a = 1
const {
  z = 3
  y = 4
}
return = a
`)
	stmts := sf.Body.Statements
	require.Len(t, stmts, 6)

	assert.Equal(t, "b", stmts[0].(*syntax.Assignment).ID.Name)
	use := stmts[1].(*syntax.Use)
	assert.True(t, use.All)
	assert.Equal(t, "std.geo2d", use.Path.String())
	assert.Equal(t, "a", stmts[2].(*syntax.Assignment).ID.Name)

	z := stmts[3].(*syntax.Assignment)
	assert.Equal(t, "z", z.ID.Name)
	assert.Equal(t, syntax.QualifierConst, z.Qualifier)
	assert.Equal(t, "y", stmts[4].(*syntax.Assignment).ID.Name)

	_, isReturn := stmts[5].(*syntax.Return)
	assert.True(t, isReturn)
}

func TestParse_Literals(t *testing.T) {
	sf := parse(t, `
i = 3
f = 3.0
e = 1e3
s = "text"
b = true
`)
	expected := []value.Value{value.Int(3), value.Float(3), value.Float(1000), value.Str("text"), value.Boolean(true)}
	require.Len(t, sf.Body.Statements, len(expected))
	for i, want := range expected {
		lit, ok := sf.Body.Statements[i].(*syntax.Assignment).Expr.(*syntax.Literal)
		require.True(t, ok, "statement %d", i)
		assert.True(t, want.Equal(lit.Value), "statement %d: expected %s (%s), got %s (%s)", i, want, want.Type(), lit.Value, lit.Value.Type())
	}
}

func TestParse_Workbench(t *testing.T) {
	sf := parse(t, `
part "washer" {
  visibility = "public"
  param "outer" { type = Length }
  param "inner" {
    type    = Length
    default = 2.0
  }
  init {
    param "size" { type = list(Length) }
    outer = size[0]
  }
  prop { hole = inner }
  expr {
    value = circle(outer)
    color = "red"
  }
}
`)
	require.Len(t, sf.Body.Statements, 1)
	wb := sf.Body.Statements[0].(*syntax.WorkbenchDefinition)
	assert.Equal(t, "washer", wb.ID.Name)
	assert.Equal(t, syntax.KindPart, wb.Kind)
	assert.Equal(t, syntax.Public, wb.Visibility)

	require.Len(t, wb.Params, 2)
	assert.Equal(t, "outer", wb.Params[0].ID.Name)
	assert.True(t, wb.Params[0].Type.Equal(value.Length))
	assert.Nil(t, wb.Params[0].Default)
	assert.NotNil(t, wb.Params[1].Default)

	inits := wb.Inits()
	require.Len(t, inits, 1)
	require.Len(t, inits[0].Params, 1)
	assert.True(t, inits[0].Params[0].Type.Equal(value.ListOf(value.Length)))

	require.Len(t, wb.Body.Statements, 3)
	prop := wb.Body.Statements[1].(*syntax.Assignment)
	assert.Equal(t, syntax.QualifierProp, prop.Qualifier)

	es := wb.Body.Statements[2].(*syntax.ExpressionStatement)
	require.Len(t, es.Attributes, 1)
	assert.Equal(t, "color", es.Attributes[0].ID.Name)
}

func TestParse_CallArguments(t *testing.T) {
	sf := parse(t, `x = std::ops::translate(c, mm(1), {y = mm(2), z = 3})`)
	call := sf.Body.Statements[0].(*syntax.Assignment).Expr.(*syntax.Call)
	assert.Equal(t, "std.ops.translate", call.Name.String())

	require.Len(t, call.Args, 4)
	assert.True(t, call.Args[0].ID.IsEmpty())
	assert.True(t, call.Args[1].ID.IsEmpty())
	assert.Equal(t, "y", call.Args[2].ID.Name)
	assert.Equal(t, "z", call.Args[3].ID.Name)

	_, isName := call.Args[0].Expr.(*syntax.Name)
	assert.True(t, isName)
}

func TestParse_CallRange(t *testing.T) {
	sf := parse(t, `x = mm(12)`)
	call := sf.Body.Statements[0].(*syntax.Assignment).Expr.(*syntax.Call)
	assert.Equal(t, 5, call.Rng.Start.Column)
	assert.Equal(t, 11, call.Rng.End.Column)
	assert.Equal(t, "test.hcl", call.Rng.Filename)
}

func TestParse_Expressions(t *testing.T) {
	sf := parse(t, `
a = -x + 2 * y
b = c ? d : e
c = m.radius
d = [1, 2][0]
e = cube(s).size
f = "r=${r}"
`)
	stmts := sf.Body.Statements
	bin := stmts[0].(*syntax.Assignment).Expr.(*syntax.Binary)
	assert.Equal(t, syntax.OpAdd, bin.Op)
	_, isUnary := bin.Left.(*syntax.Unary)
	assert.True(t, isUnary)

	_, isCond := stmts[1].(*syntax.Assignment).Expr.(*syntax.Conditional)
	assert.True(t, isCond)

	name := stmts[2].(*syntax.Assignment).Expr.(*syntax.Name)
	assert.Equal(t, "m.radius", name.Name.String())

	_, isIndex := stmts[3].(*syntax.Assignment).Expr.(*syntax.Index)
	assert.True(t, isIndex)

	prop := stmts[4].(*syntax.Assignment).Expr.(*syntax.Property)
	assert.Equal(t, "size", prop.ID.Name)

	tmpl := stmts[5].(*syntax.Assignment).Expr.(*syntax.Template)
	assert.Len(t, tmpl.Parts, 2)
}

func TestParse_IfStatement(t *testing.T) {
	sf := parse(t, `
if {
  condition = a > 1
  then { x = 1 }
  else { x = 2 }
}
`)
	stmt := sf.Body.Statements[0].(*syntax.If)
	require.NotNil(t, stmt.Then)
	require.NotNil(t, stmt.Else)
	assert.Len(t, stmt.Then.Statements, 1)
}

func TestParse_UseAlias(t *testing.T) {
	sf := parse(t, `use "std.math.sqrt" {
  as         = "root"
  visibility = "public"
}`)
	use := sf.Body.Statements[0].(*syntax.Use)
	assert.Equal(t, "root", use.LocalName().Name)
	assert.Equal(t, syntax.Public, use.Visibility)
	assert.False(t, use.All)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"unknown block", `widget "x" {}`},
		{"param outside definition", `param "x" { type = Length }`},
		{"unknown type", `function "f" {
  param "x" { type = Meters }
}`},
		{"untyped parameter", `function "f" {
  param "x" {}
}`},
		{"bad visibility", `use "a.b" { visibility = "protected" }`},
		{"renamed wildcard", `use "a.*" { as = "b" }`},
		{"expr without value", `expr { color = "red" }`},
		{"if without then", `if { condition = true }`},
		{"missing label", `module {}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, diags := NewParser().ParseSource(ctxlog.Discard(context.Background()), []byte(tc.src), "test.hcl")
			assert.True(t, diags.HasErrors())
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0644))

	p := NewParser()
	sf, diags := p.ParseFile(ctxlog.Discard(context.Background()), path)
	require.False(t, diags.HasErrors())
	assert.Equal(t, path, sf.Filename)
	assert.Contains(t, p.Files(), path)
}
