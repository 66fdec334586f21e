package symbol

import (
	"fmt"

	"github.com/specialistvlad/hclcad/internal/ident"
)

// SymbolNotFoundError is returned when a name denotes nothing.
type SymbolNotFoundError struct {
	Name ident.QualifiedName
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol '%s' not found", e.Name)
}

func (e *SymbolNotFoundError) Summary() string { return "Symbol not found" }

// CircularAliasError is returned when following aliases leads back to an
// alias already on the chain.
type CircularAliasError struct {
	Name ident.QualifiedName
}

func (e *CircularAliasError) Error() string {
	return fmt.Sprintf("alias '%s' refers to itself", e.Name)
}

func (e *CircularAliasError) Summary() string { return "Circular alias" }

// DuplicateSymbolError is returned when a namespace already holds a
// different symbol under the same name.
type DuplicateSymbolError struct {
	ID        ident.Identifier
	Namespace ident.QualifiedName
}

func (e *DuplicateSymbolError) Error() string {
	if e.Namespace.IsEmpty() {
		return fmt.Sprintf("symbol '%s' is already defined", e.ID)
	}
	return fmt.Sprintf("symbol '%s' is already defined in '%s'", e.ID, e.Namespace)
}

func (e *DuplicateSymbolError) Summary() string { return "Duplicate symbol" }

// NotAValueError is returned when a value is stored into or read from a
// symbol that does not carry one.
type NotAValueError struct {
	Name ident.QualifiedName
	Kind Kind
}

func (e *NotAValueError) Error() string {
	return fmt.Sprintf("'%s' is a %s, not a value", e.Name, e.Kind)
}

func (e *NotAValueError) Summary() string { return "Not a value" }
