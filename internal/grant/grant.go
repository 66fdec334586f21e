// Package grant decides which statements may appear directly in which kind
// of scope.
package grant

import (
	"fmt"

	"github.com/specialistvlad/hclcad/internal/stack"
	"github.com/specialistvlad/hclcad/internal/syntax"
)

// StatementKind classifies statements for admission.
type StatementKind int

const (
	WorkbenchDefinition StatementKind = iota
	ModuleDefinition
	FunctionDefinition
	PublicFunctionDefinition
	InitDefinition
	PrivateUse
	PublicUse
	Return
	If
	ValueAssignment
	ConstAssignment
	PublicConstAssignment
	PropAssignment
	Expression
)

var statementKindNames = map[StatementKind]string{
	WorkbenchDefinition:      "WorkbenchDefinition",
	ModuleDefinition:         "ModuleDefinition",
	FunctionDefinition:       "FunctionDefinition",
	PublicFunctionDefinition: "PublicFunctionDefinition",
	InitDefinition:           "InitDefinition",
	PrivateUse:               "PrivateUse",
	PublicUse:                "PublicUse",
	Return:                   "Return",
	If:                       "If",
	ValueAssignment:          "ValueAssignment",
	ConstAssignment:          "ConstAssignment",
	PublicConstAssignment:    "PublicConstAssignment",
	PropAssignment:           "PropAssignment",
	Expression:               "Expression",
}

func (k StatementKind) String() string {
	if name, ok := statementKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatementKind(%d)", int(k))
}

// KindOf classifies a statement.
func KindOf(stmt syntax.Statement) StatementKind {
	switch s := stmt.(type) {
	case *syntax.WorkbenchDefinition:
		return WorkbenchDefinition
	case *syntax.ModuleDefinition:
		return ModuleDefinition
	case *syntax.FunctionDefinition:
		if s.Visibility == syntax.Public {
			return PublicFunctionDefinition
		}
		return FunctionDefinition
	case *syntax.InitDefinition:
		return InitDefinition
	case *syntax.Use:
		if s.Visibility == syntax.Public {
			return PublicUse
		}
		return PrivateUse
	case *syntax.Return:
		return Return
	case *syntax.If:
		return If
	case *syntax.Assignment:
		switch s.Qualifier {
		case syntax.QualifierConst:
			return ConstAssignment
		case syntax.QualifierPubConst:
			return PublicConstAssignment
		case syntax.QualifierProp:
			return PropAssignment
		}
		return ValueAssignment
	case *syntax.ExpressionStatement:
		return Expression
	}
	panic(fmt.Sprintf("grant: unknown statement %T", stmt))
}

type pair struct {
	frame stack.FrameKind
	stmt  StatementKind
}

func allow(frame stack.FrameKind, kinds ...StatementKind) map[pair]bool {
	m := make(map[pair]bool, len(kinds))
	for _, k := range kinds {
		m[pair{frame, k}] = true
	}
	return m
}

func merge(tables ...map[pair]bool) map[pair]bool {
	out := make(map[pair]bool)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

// granted lists every allowed pair; everything else is refused.
var granted = merge(
	allow(stack.FrameSource,
		ValueAssignment, ConstAssignment, PublicConstAssignment,
		Expression, FunctionDefinition, PublicFunctionDefinition,
		If, ModuleDefinition, PrivateUse, PublicUse, WorkbenchDefinition),
	allow(stack.FrameModule,
		ValueAssignment, ConstAssignment, PublicConstAssignment,
		Expression, FunctionDefinition, PublicFunctionDefinition,
		ModuleDefinition, PrivateUse, PublicUse, WorkbenchDefinition),
	allow(stack.FrameWorkbench,
		ValueAssignment, PropAssignment, Expression,
		FunctionDefinition, If, InitDefinition, PrivateUse),
	allow(stack.FrameInit,
		ValueAssignment, If, PrivateUse),
	allow(stack.FrameFunction,
		ValueAssignment, Expression, If, Return, PrivateUse),
)

// Granted reports whether a statement of kind stmt may run directly in a
// scope of kind frame.
func Granted(frame stack.FrameKind, stmt StatementKind) bool {
	return granted[pair{frame, stmt}]
}

// StatementNotSupportedError is reported for a refused statement.
type StatementNotSupportedError struct {
	Statement StatementKind
	Frame     stack.FrameKind
}

func (e *StatementNotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported in %s", e.Statement, e.Frame)
}

func (e *StatementNotSupportedError) Summary() string { return "Statement not supported" }

// Check admits stmt into the current scope of s.
func Check(s *stack.Stack, stmt syntax.Statement) error {
	kind := KindOf(stmt)
	frame := stack.FrameSource
	if scope, ok := s.Scope(); ok {
		frame = scope.Kind
	}
	if !Granted(frame, kind) {
		return &StatementNotSupportedError{Statement: kind, Frame: frame}
	}
	return nil
}
