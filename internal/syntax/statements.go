// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package syntax

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
)

// Visibility of a definition or import.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}

// Statement is a single item of a Body.
type Statement interface {
	Range() hcl.Range
	isStatement()
}

// Body is an ordered list of statements.
type Body struct {
	Statements []Statement
	Rng        hcl.Range
}

// SourceFile is the root of a parsed file.
type SourceFile struct {
	Filename string
	Body     *Body
}

// Qualifier selects the kind of an assignment.
type Qualifier int

const (
	QualifierValue Qualifier = iota
	QualifierConst
	QualifierPubConst
	QualifierProp
)

func (q Qualifier) String() string {
	switch q {
	case QualifierConst:
		return "const"
	case QualifierPubConst:
		return "pub"
	case QualifierProp:
		return "prop"
	}
	return "value"
}

// Assignment binds a name to the value of an expression.
type Assignment struct {
	Qualifier Qualifier
	ID        ident.Identifier
	Expr      Expression
	Rng       hcl.Range
}

// Return ends a function with a result.
type Return struct {
	Expr Expression
	Rng  hcl.Range
}

// Use imports a symbol (or all public children of a symbol) into scope.
type Use struct {
	Visibility Visibility
	Path       ident.QualifiedName
	// Alias overrides the local name; empty means the last path segment.
	Alias ident.Identifier
	All   bool
	Rng   hcl.Range
}

// LocalName is the identifier the import binds.
func (u *Use) LocalName() ident.Identifier {
	if !u.Alias.IsEmpty() {
		return u.Alias
	}
	last, _ := u.Path.Last()
	return last
}

// ModuleDefinition declares a nested namespace.
type ModuleDefinition struct {
	Visibility Visibility
	ID         ident.Identifier
	Body       *Body
	Rng        hcl.Range
}

// WorkbenchKind tells what a workbench produces.
type WorkbenchKind int

const (
	KindPart WorkbenchKind = iota
	KindSketch
	KindOp
)

func (k WorkbenchKind) String() string {
	switch k {
	case KindSketch:
		return "sketch"
	case KindOp:
		return "op"
	}
	return "part"
}

// WorkbenchDefinition declares a parametric part, sketch or operation.
type WorkbenchDefinition struct {
	Visibility Visibility
	Kind       WorkbenchKind
	ID         ident.Identifier
	Params     []*Parameter
	Body       *Body
	Rng        hcl.Range
}

// Inits returns the initializers declared in the body, in source order.
func (w *WorkbenchDefinition) Inits() []*InitDefinition {
	var inits []*InitDefinition
	for _, stmt := range w.Body.Statements {
		if init, ok := stmt.(*InitDefinition); ok {
			inits = append(inits, init)
		}
	}
	return inits
}

// InitDefinition is an alternative parameter list of a workbench whose body
// computes the workbench parameters.
type InitDefinition struct {
	Params []*Parameter
	Body   *Body
	Rng    hcl.Range
}

// FunctionDefinition declares a function.
type FunctionDefinition struct {
	Visibility Visibility
	ID         ident.Identifier
	Params     []*Parameter
	Body       *Body
	Rng        hcl.Range
}

// If evaluates one of two bodies.
type If struct {
	Cond Expression
	Then *Body
	// Else may be nil.
	Else *Body
	Rng  hcl.Range
}

// ExpressionStatement evaluates an expression, usually producing models.
type ExpressionStatement struct {
	Expr       Expression
	Attributes []*Attribute
	Rng        hcl.Range
}

// Attribute decorates the models produced by an expression statement.
type Attribute struct {
	ID   ident.Identifier
	Expr Expression
	Rng  hcl.Range
}

func (s *Assignment) Range() hcl.Range          { return s.Rng }
func (s *Return) Range() hcl.Range              { return s.Rng }
func (s *Use) Range() hcl.Range                 { return s.Rng }
func (s *ModuleDefinition) Range() hcl.Range    { return s.Rng }
func (s *WorkbenchDefinition) Range() hcl.Range { return s.Rng }
func (s *InitDefinition) Range() hcl.Range      { return s.Rng }
func (s *FunctionDefinition) Range() hcl.Range  { return s.Rng }
func (s *If) Range() hcl.Range                  { return s.Rng }
func (s *ExpressionStatement) Range() hcl.Range { return s.Rng }

func (*Assignment) isStatement()          {}
func (*Return) isStatement()              {}
func (*Use) isStatement()                 {}
func (*ModuleDefinition) isStatement()    {}
func (*WorkbenchDefinition) isStatement() {}
func (*InitDefinition) isStatement()      {}
func (*FunctionDefinition) isStatement()  {}
func (*If) isStatement()                  {}
func (*ExpressionStatement) isStatement() {}
