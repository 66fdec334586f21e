// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package syntax

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Expression is any node that evaluates to a value.
type Expression interface {
	Range() hcl.Range
	isExpression()
}

// Parameter is a declared parameter of a workbench, init or function.
type Parameter struct {
	ID ident.Identifier
	// Type is Invalid when the parameter is untyped and takes the type of
	// its default.
	Type    value.Type
	Default Expression
	Rng     hcl.Range
}

// Argument is a call argument. ID is empty for positional arguments.
type Argument struct {
	ID   ident.Identifier
	Expr Expression
	Rng  hcl.Range
}

// Literal is a constant value.
type Literal struct {
	Value value.Value
	Rng   hcl.Range
}

// Name refers to a symbol, e.g. `radius` or `std.math.pi`.
type Name struct {
	Name ident.QualifiedName
	Rng  hcl.Range
}

// Call invokes a function, workbench or builtin.
type Call struct {
	Name ident.QualifiedName
	Args []*Argument
	Rng  hcl.Range
}

// ListExpr builds a list.
type ListExpr struct {
	Items []Expression
	Rng   hcl.Range
}

// TupleExpr builds a named tuple.
type TupleExpr struct {
	Fields []*Argument
	Rng    hcl.Range
}

// BinaryOp is a two-operand operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNotEq
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpAnd
	OpOr
)

var binaryOpSymbols = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNotEq: "!=", OpLt: "<", OpGt: ">", OpLtEq: "<=", OpGtEq: ">=",
	OpAnd: "&&", OpOr: "||",
}

func (op BinaryOp) String() string { return binaryOpSymbols[op] }

// UnaryOp is a one-operand operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

// Binary applies a BinaryOp.
type Binary struct {
	Op          BinaryOp
	Left, Right Expression
	Rng         hcl.Range
}

// Unary applies a UnaryOp.
type Unary struct {
	Op      UnaryOp
	Operand Expression
	Rng     hcl.Range
}

// Conditional is `cond ? a : b`.
type Conditional struct {
	Cond, True, False Expression
	Rng               hcl.Range
}

// Index is `collection[key]`.
type Index struct {
	Collection, Key Expression
	Rng             hcl.Range
}

// Property is `object.id` on an arbitrary expression.
type Property struct {
	Object Expression
	ID     ident.Identifier
	Rng    hcl.Range
}

// Template concatenates the string forms of its parts.
type Template struct {
	Parts []Expression
	Rng   hcl.Range
}

func (e *Literal) Range() hcl.Range     { return e.Rng }
func (e *Name) Range() hcl.Range        { return e.Rng }
func (e *Call) Range() hcl.Range        { return e.Rng }
func (e *ListExpr) Range() hcl.Range    { return e.Rng }
func (e *TupleExpr) Range() hcl.Range   { return e.Rng }
func (e *Binary) Range() hcl.Range      { return e.Rng }
func (e *Unary) Range() hcl.Range       { return e.Rng }
func (e *Conditional) Range() hcl.Range { return e.Rng }
func (e *Index) Range() hcl.Range       { return e.Rng }
func (e *Property) Range() hcl.Range    { return e.Rng }
func (e *Template) Range() hcl.Range    { return e.Rng }

func (*Literal) isExpression()     {}
func (*Name) isExpression()        {}
func (*Call) isExpression()        {}
func (*ListExpr) isExpression()    {}
func (*TupleExpr) isExpression()   {}
func (*Binary) isExpression()      {}
func (*Unary) isExpression()       {}
func (*Conditional) isExpression() {}
func (*Index) isExpression()       {}
func (*Property) isExpression()    {}
func (*Template) isExpression()    {}
