package eval

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/symbol"
)

// AmbiguousSymbolError is returned when lookup origins disagree about a
// name.
type AmbiguousSymbolError struct {
	Name    ident.QualifiedName
	Origins []string
	Symbols []string
}

func (e *AmbiguousSymbolError) Error() string {
	parts := make([]string, 0, len(e.Origins))
	for i, o := range e.Origins {
		parts = append(parts, fmt.Sprintf("%s (%s)", e.Symbols[i], o))
	}
	return fmt.Sprintf("'%s' is ambiguous: %s", e.Name, strings.Join(parts, ", "))
}

func (e *AmbiguousSymbolError) Summary() string { return "Ambiguous symbol" }

// NotCallableError is returned when a call targets something that is not a
// function, workbench or builtin.
type NotCallableError struct {
	Name ident.QualifiedName
	Kind symbol.Kind
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("'%s' is a %s and cannot be called", e.Name, e.Kind)
}

func (e *NotCallableError) Summary() string { return "Not callable" }

// ValueNotAvailableError is returned when a constant is read before its
// statement ran.
type ValueNotAvailableError struct {
	Name ident.QualifiedName
}

func (e *ValueNotAvailableError) Error() string {
	return fmt.Sprintf("value of '%s' is not available yet", e.Name)
}

func (e *ValueNotAvailableError) Summary() string { return "Value not available" }

// NoModelError is returned for statements that need a model under
// construction but run outside of a workbench.
type NoModelError struct {
	What string
}

func (e *NoModelError) Error() string {
	return fmt.Sprintf("%s needs a workbench", e.What)
}

// CallError wraps an error raised inside a call with the call site, so that
// the reported message reads like a call trace.
type CallError struct {
	Callee string
	Site   hcl.Range
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s\n  in %s called at %s", e.Err, e.Callee, e.Site)
}

func (e *CallError) Unwrap() error { return e.Err }
