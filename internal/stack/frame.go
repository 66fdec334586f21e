package stack

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/symbol"
)

// FrameKind tags a Frame.
type FrameKind int

const (
	FrameSource FrameKind = iota
	FrameNamespace
	FrameModule
	FrameInit
	FrameWorkbench
	FrameBody
	FrameFunction
	FrameCall
)

var frameKindNames = map[FrameKind]string{
	FrameSource:    "Source",
	FrameNamespace: "Namespace",
	FrameModule:    "Module",
	FrameInit:      "Init",
	FrameWorkbench: "Workbench",
	FrameBody:      "Body",
	FrameFunction:  "Function",
	FrameCall:      "Call",
}

func (k FrameKind) String() string {
	if name, ok := frameKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FrameKind(%d)", int(k))
}

// ownsLocals reports whether frames of kind k keep local bindings.
func (k FrameKind) ownsLocals() bool {
	switch k {
	case FrameSource, FrameModule, FrameInit, FrameBody:
		return true
	}
	return false
}

type local struct {
	id  ident.Identifier
	sym symbol.Symbol
}

// Frame is one lexical scope of the evaluation.
type Frame struct {
	Kind FrameKind
	// Symbol is the source file, module, workbench, function or callee
	// the frame was opened for. Body and Init frames have none.
	Symbol symbol.Symbol
	// Model is the workpiece built by a Workbench frame.
	Model model.Handle
	// Args and Site describe a Call frame.
	Args []argmatch.Argument
	Site hcl.Range

	locals []local
}

func SourceFrame(file symbol.Symbol) *Frame {
	return &Frame{Kind: FrameSource, Symbol: file, Model: model.NoHandle}
}

// NamespaceFrame opens the namespace of a callee. Name lookups through the
// stack stop here.
func NamespaceFrame(ns symbol.Symbol) *Frame {
	return &Frame{Kind: FrameNamespace, Symbol: ns, Model: model.NoHandle}
}

func ModuleFrame(m symbol.Symbol) *Frame {
	return &Frame{Kind: FrameModule, Symbol: m, Model: model.NoHandle}
}

func InitFrame() *Frame {
	return &Frame{Kind: FrameInit, Model: model.NoHandle}
}

func WorkbenchFrame(w symbol.Symbol, h model.Handle) *Frame {
	return &Frame{Kind: FrameWorkbench, Symbol: w, Model: h}
}

func BodyFrame() *Frame {
	return &Frame{Kind: FrameBody, Model: model.NoHandle}
}

func FunctionFrame(f symbol.Symbol) *Frame {
	return &Frame{Kind: FrameFunction, Symbol: f, Model: model.NoHandle}
}

func CallFrame(callee symbol.Symbol, args []argmatch.Argument, site hcl.Range) *Frame {
	return &Frame{Kind: FrameCall, Symbol: callee, Model: model.NoHandle, Args: args, Site: site}
}

func (f *Frame) lookup(id ident.Identifier) (symbol.Symbol, bool) {
	for _, l := range f.locals {
		if l.id.Name == id.Name {
			return l.sym, true
		}
	}
	return symbol.Symbol{}, false
}

// bind adds or replaces a local.
func (f *Frame) bind(id ident.Identifier, sym symbol.Symbol) {
	for i, l := range f.locals {
		if l.id.Name == id.Name {
			f.locals[i].sym = sym
			return
		}
	}
	f.locals = append(f.locals, local{id: id, sym: sym})
}

// Locals returns the local names in binding order.
func (f *Frame) Locals() []ident.Identifier {
	ids := make([]ident.Identifier, 0, len(f.locals))
	for _, l := range f.locals {
		ids = append(ids, l.id)
	}
	return ids
}
