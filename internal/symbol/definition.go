package symbol

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Visibility of a symbol or of a child entry.
type Visibility = syntax.Visibility

const (
	Private = syntax.Private
	Public  = syntax.Public
)

// Kind tags a Definition.
type Kind int

const (
	KindSourceFile Kind = iota
	KindNamespace
	KindModule
	KindWorkbench
	KindFunction
	KindConstant
	KindArgument
	KindAlias
	KindUseAll
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindSourceFile:
		return "source"
	case KindNamespace:
		return "namespace"
	case KindModule:
		return "module"
	case KindWorkbench:
		return "workbench"
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	case KindArgument:
		return "argument"
	case KindAlias:
		return "alias"
	case KindUseAll:
		return "use-all"
	case KindBuiltin:
		return "builtin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsModuleLike reports whether symbols of kind k own a namespace that takes
// part in `use` resolution.
func (k Kind) IsModuleLike() bool {
	return k == KindSourceFile || k == KindNamespace || k == KindModule
}

// Definition is what a symbol stands for. Only the fields matching Kind are
// set.
type Definition struct {
	Kind Kind
	ID   ident.Identifier
	Src  hcl.Range

	File      *syntax.SourceFile
	Module    *syntax.ModuleDefinition
	Workbench *syntax.WorkbenchDefinition
	Function  *syntax.FunctionDefinition
	Builtin   *registry.Builtin

	// Value of a Constant or Argument. Invalid until evaluated.
	Value value.Value
	// Target of an Alias or UseAll.
	Target ident.QualifiedName
}

func SourceFile(id ident.Identifier, file *syntax.SourceFile) *Definition {
	return &Definition{Kind: KindSourceFile, ID: id, File: file}
}

func Namespace(id ident.Identifier) *Definition {
	return &Definition{Kind: KindNamespace, ID: id}
}

func Module(m *syntax.ModuleDefinition) *Definition {
	return &Definition{Kind: KindModule, ID: m.ID, Src: m.Rng, Module: m}
}

func Workbench(w *syntax.WorkbenchDefinition) *Definition {
	return &Definition{Kind: KindWorkbench, ID: w.ID, Src: w.Rng, Workbench: w}
}

func Function(f *syntax.FunctionDefinition) *Definition {
	return &Definition{Kind: KindFunction, ID: f.ID, Src: f.Rng, Function: f}
}

// Constant creates a constant definition. v may be invalid when the value
// is only known after evaluation.
func Constant(id ident.Identifier, v value.Value, src hcl.Range) *Definition {
	return &Definition{Kind: KindConstant, ID: id, Src: src, Value: v}
}

// Argument is a bound call argument visible as a local.
func Argument(id ident.Identifier, v value.Value) *Definition {
	return &Definition{Kind: KindArgument, ID: id, Src: id.Src, Value: v}
}

// Alias stands for target under the name id until resolved.
func Alias(id ident.Identifier, target ident.QualifiedName, src hcl.Range) *Definition {
	return &Definition{Kind: KindAlias, ID: id, Src: src, Target: target}
}

// UseAll imports every public child of target. Its id is derived from the
// target and cannot clash with a source name.
func UseAll(target ident.QualifiedName, src hcl.Range) *Definition {
	return &Definition{Kind: KindUseAll, ID: ident.New("*" + target.String()), Src: src, Target: target}
}

func Builtin(id ident.Identifier, b *registry.Builtin) *Definition {
	return &Definition{Kind: KindBuiltin, ID: id, Builtin: b}
}

// IsValue reports whether the definition carries a value.
func (d *Definition) IsValue() bool {
	return d.Kind == KindConstant || d.Kind == KindArgument
}

// IsLink reports whether the definition is a not yet resolved import.
func (d *Definition) IsLink() bool {
	return d.Kind == KindAlias || d.Kind == KindUseAll
}

// IsCallable reports whether a call expression may target the definition.
func (d *Definition) IsCallable() bool {
	return d.Kind == KindWorkbench || d.Kind == KindFunction || d.Kind == KindBuiltin
}
