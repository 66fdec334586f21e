package hcl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/syntax"
)

// translator converts one native HCL file into the syntax tree. It
// collects diagnostics instead of stopping at the first problem.
type translator struct {
	ctx   context.Context
	src   []byte
	diags hcl.Diagnostics
}

// bodyItem is an attribute or a block of a body.
type bodyItem struct {
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func (i bodyItem) start() int {
	if i.attr != nil {
		return i.attr.SrcRange.Start.Byte
	}
	return i.block.TypeRange.Start.Byte
}

// orderedItems returns the attributes and blocks of b in source order,
// leaving out the attribute names and block types listed in skip.
func orderedItems(b *hclsyntax.Body, skip ...string) []bodyItem {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}

	items := make([]bodyItem, 0, len(b.Attributes)+len(b.Blocks))
	for name, attr := range b.Attributes {
		if !skipped[name] {
			items = append(items, bodyItem{attr: attr})
		}
	}
	for _, block := range b.Blocks {
		if !skipped[block.Type] {
			items = append(items, bodyItem{block: block})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].start() < items[j].start() })
	return items
}

func (t *translator) errorf(rng hcl.Range, summary, format string, args ...any) {
	subject := rng
	t.diags = append(t.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  &subject,
	})
}

// body translates the statements of b. Items named in skip are handled by
// the caller, e.g. `param` blocks of a definition.
func (t *translator) body(b *hclsyntax.Body, skip []string) *syntax.Body {
	out := &syntax.Body{Rng: b.SrcRange}
	for _, item := range orderedItems(b, skip...) {
		if item.attr != nil {
			out.Statements = append(out.Statements, t.attributeStatement(item.attr))
			continue
		}
		out.Statements = append(out.Statements, t.blockStatements(item.block)...)
	}
	return out
}

func (t *translator) attributeStatement(attr *hclsyntax.Attribute) syntax.Statement {
	if attr.Name == "return" {
		return &syntax.Return{Expr: t.expr(attr.Expr), Rng: attr.SrcRange}
	}
	return &syntax.Assignment{
		Qualifier: syntax.QualifierValue,
		ID:        ident.NewAt(attr.Name, attr.NameRange),
		Expr:      t.expr(attr.Expr),
		Rng:       attr.SrcRange,
	}
}

var qualifierBlocks = map[string]syntax.Qualifier{
	"const": syntax.QualifierConst,
	"pub":   syntax.QualifierPubConst,
	"prop":  syntax.QualifierProp,
}

// blockStatements translates one block. Qualifier blocks expand into one
// statement per attribute, every other block into at most one statement.
func (t *translator) blockStatements(block *hclsyntax.Block) []syntax.Statement {
	if q, ok := qualifierBlocks[block.Type]; ok {
		if !t.expectLabels(block, 0) {
			return nil
		}
		return t.qualifiedAssignments(block, q)
	}

	var stmt syntax.Statement
	switch block.Type {
	case "use":
		stmt = t.use(block)
	case "module":
		stmt = t.module(block)
	case "part", "sketch", "op":
		stmt = t.workbench(block)
	case "function":
		stmt = t.function(block)
	case "init":
		stmt = t.init(block)
	case "if":
		stmt = t.ifStatement(block)
	case "expr":
		stmt = t.expressionStatement(block)
	case "param":
		t.errorf(block.DefRange(), "Unexpected param block", "Parameters can only be declared in part, sketch, op, init and function blocks.")
	default:
		t.errorf(block.DefRange(), "Unsupported block type", "Blocks of type %q are not expected here.", block.Type)
	}
	if stmt == nil {
		return nil
	}
	return []syntax.Statement{stmt}
}

func (t *translator) expectLabels(block *hclsyntax.Block, n int) bool {
	if len(block.Labels) == n {
		return true
	}
	t.errorf(block.DefRange(), "Wrong number of labels", "A %q block requires %d label(s), got %d.", block.Type, n, len(block.Labels))
	return false
}

// labelID turns the single label of a block into an identifier.
func (t *translator) labelID(block *hclsyntax.Block) (ident.Identifier, bool) {
	if !t.expectLabels(block, 1) {
		return ident.Identifier{}, false
	}
	name := block.Labels[0]
	if !ident.IsValid(name) {
		t.errorf(block.LabelRanges[0], "Invalid name", "%q is not a valid identifier.", name)
		return ident.Identifier{}, false
	}
	return ident.NewAt(name, block.LabelRanges[0]), true
}

func (t *translator) qualifiedAssignments(block *hclsyntax.Block, q syntax.Qualifier) []syntax.Statement {
	var stmts []syntax.Statement
	for _, item := range orderedItems(block.Body) {
		if item.block != nil {
			t.errorf(item.block.DefRange(), "Unexpected block", "A %q block may only contain attributes.", block.Type)
			continue
		}
		stmts = append(stmts, &syntax.Assignment{
			Qualifier: q,
			ID:        ident.NewAt(item.attr.Name, item.attr.NameRange),
			Expr:      t.expr(item.attr.Expr),
			Rng:       item.attr.SrcRange,
		})
	}
	return stmts
}

// useBlock is the schema of a `use` block body.
type useBlock struct {
	As         string `hcl:"as,optional"`
	Visibility string `hcl:"visibility,optional"`
}

func (t *translator) use(block *hclsyntax.Block) syntax.Statement {
	if !t.expectLabels(block, 1) {
		return nil
	}

	var schema useBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &schema); diags.HasErrors() {
		t.diags = append(t.diags, diags...)
		return nil
	}

	raw := block.Labels[0]
	all := false
	for _, suffix := range []string{".*", "::*"} {
		if strings.HasSuffix(raw, suffix) {
			raw = strings.TrimSuffix(raw, suffix)
			all = true
			break
		}
	}

	path, err := ident.Parse(raw)
	if err != nil {
		t.errorf(block.LabelRanges[0], "Invalid import path", "%s.", err)
		return nil
	}
	for i := range path {
		path[i].Src = block.LabelRanges[0]
	}

	vis, ok := t.visibility(schema.Visibility, block.DefRange())
	if !ok {
		return nil
	}

	stmt := &syntax.Use{Visibility: vis, Path: path, All: all, Rng: block.Range()}
	if schema.As != "" {
		if all {
			t.errorf(block.DefRange(), "Invalid import", "A wildcard import cannot be renamed.")
			return nil
		}
		if !ident.IsValid(schema.As) {
			t.errorf(block.DefRange(), "Invalid name", "%q is not a valid identifier.", schema.As)
			return nil
		}
		stmt.Alias = ident.NewAt(schema.As, block.DefRange())
	}
	return stmt
}

func (t *translator) visibility(raw string, rng hcl.Range) (syntax.Visibility, bool) {
	switch raw {
	case "", "private":
		return syntax.Private, true
	case "public":
		return syntax.Public, true
	}
	t.errorf(rng, "Invalid visibility", "Visibility must be \"public\" or \"private\", got %q.", raw)
	return syntax.Private, false
}

// definitionVisibility reads the reserved `visibility` attribute of a
// definition body.
func (t *translator) definitionVisibility(b *hclsyntax.Body) syntax.Visibility {
	attr, ok := b.Attributes["visibility"]
	if !ok {
		return syntax.Private
	}
	var raw string
	if diags := gohcl.DecodeExpression(attr.Expr, nil, &raw); diags.HasErrors() {
		t.diags = append(t.diags, diags...)
		return syntax.Private
	}
	vis, _ := t.visibility(raw, attr.SrcRange)
	return vis
}

func (t *translator) module(block *hclsyntax.Block) syntax.Statement {
	id, ok := t.labelID(block)
	if !ok {
		return nil
	}
	return &syntax.ModuleDefinition{
		Visibility: t.definitionVisibility(block.Body),
		ID:         id,
		Body:       t.body(block.Body, []string{"visibility"}),
		Rng:        block.Range(),
	}
}

var workbenchKinds = map[string]syntax.WorkbenchKind{
	"part":   syntax.KindPart,
	"sketch": syntax.KindSketch,
	"op":     syntax.KindOp,
}

func (t *translator) workbench(block *hclsyntax.Block) syntax.Statement {
	id, ok := t.labelID(block)
	if !ok {
		return nil
	}
	return &syntax.WorkbenchDefinition{
		Visibility: t.definitionVisibility(block.Body),
		Kind:       workbenchKinds[block.Type],
		ID:         id,
		Params:     t.params(block.Body),
		Body:       t.body(block.Body, []string{"visibility", "param"}),
		Rng:        block.Range(),
	}
}

func (t *translator) function(block *hclsyntax.Block) syntax.Statement {
	id, ok := t.labelID(block)
	if !ok {
		return nil
	}
	return &syntax.FunctionDefinition{
		Visibility: t.definitionVisibility(block.Body),
		ID:         id,
		Params:     t.params(block.Body),
		Body:       t.body(block.Body, []string{"visibility", "param"}),
		Rng:        block.Range(),
	}
}

func (t *translator) init(block *hclsyntax.Block) syntax.Statement {
	if !t.expectLabels(block, 0) {
		return nil
	}
	return &syntax.InitDefinition{
		Params: t.params(block.Body),
		Body:   t.body(block.Body, []string{"param"}),
		Rng:    block.Range(),
	}
}

func (t *translator) ifStatement(block *hclsyntax.Block) syntax.Statement {
	if !t.expectLabels(block, 0) {
		return nil
	}

	cond, ok := block.Body.Attributes["condition"]
	if !ok {
		t.errorf(block.DefRange(), "Missing condition", "An \"if\" block requires a \"condition\" attribute.")
		return nil
	}
	for name, attr := range block.Body.Attributes {
		if name != "condition" {
			t.errorf(attr.NameRange, "Unexpected attribute", "An \"if\" block only accepts \"condition\", got %q.", name)
		}
	}

	stmt := &syntax.If{Cond: t.expr(cond.Expr), Rng: block.Range()}
	for _, b := range block.Body.Blocks {
		switch {
		case b.Type == "then" && stmt.Then == nil:
			stmt.Then = t.body(b.Body, nil)
		case b.Type == "else" && stmt.Else == nil:
			stmt.Else = t.body(b.Body, nil)
		default:
			t.errorf(b.DefRange(), "Unexpected block", "An \"if\" block takes a single \"then\" and an optional \"else\" block, got %q.", b.Type)
		}
	}
	if stmt.Then == nil {
		t.errorf(block.DefRange(), "Missing then block", "An \"if\" block requires a \"then\" block.")
		return nil
	}
	return stmt
}

func (t *translator) expressionStatement(block *hclsyntax.Block) syntax.Statement {
	if !t.expectLabels(block, 0) {
		return nil
	}

	valueAttr, ok := block.Body.Attributes["value"]
	if !ok {
		t.errorf(block.DefRange(), "Missing value", "An \"expr\" block requires a \"value\" attribute.")
		return nil
	}
	stmt := &syntax.ExpressionStatement{Expr: t.expr(valueAttr.Expr), Rng: block.Range()}

	for _, item := range orderedItems(block.Body, "value") {
		if item.block != nil {
			t.errorf(item.block.DefRange(), "Unexpected block", "An \"expr\" block may only contain attributes.")
			continue
		}
		stmt.Attributes = append(stmt.Attributes, &syntax.Attribute{
			ID:   ident.NewAt(item.attr.Name, item.attr.NameRange),
			Expr: t.expr(item.attr.Expr),
			Rng:  item.attr.SrcRange,
		})
	}
	return stmt
}

// paramBlock is the schema of a `param` block body.
type paramBlock struct {
	Type    *hcl.Attribute `hcl:"type,optional"`
	Default *hcl.Attribute `hcl:"default,optional"`
}

// params reads the `param` blocks of a definition body in source order.
func (t *translator) params(b *hclsyntax.Body) []*syntax.Parameter {
	var params []*syntax.Parameter
	seen := make(map[string]bool)

	for _, block := range b.Blocks {
		if block.Type != "param" {
			continue
		}
		id, ok := t.labelID(block)
		if !ok {
			continue
		}
		if seen[id.Name] {
			t.errorf(block.DefRange(), "Duplicate parameter", "Parameter %q is declared more than once.", id.Name)
			continue
		}
		seen[id.Name] = true

		var schema paramBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &schema); diags.HasErrors() {
			t.diags = append(t.diags, diags...)
			continue
		}

		param := &syntax.Parameter{ID: id, Rng: block.Range()}
		if schema.Type != nil {
			typ, err := t.typeExpr(schema.Type.Expr)
			if err != nil {
				t.errorf(schema.Type.Range, "Invalid type", "%s.", err)
				continue
			}
			param.Type = typ
		}
		if schema.Default != nil {
			param.Default = t.expr(schema.Default.Expr)
		}
		if !param.Type.IsValid() && param.Default == nil {
			t.errorf(block.DefRange(), "Untyped parameter", "Parameter %q needs a type, a default, or both.", id.Name)
			continue
		}
		params = append(params, param)
	}
	return params
}
