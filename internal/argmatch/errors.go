package argmatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/hclcad/internal/value"
)

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

// MissingArgumentsError lists parameters that received no value.
type MissingArgumentsError struct {
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("missing arguments: %s", strings.Join(e.Names, ", "))
}

func (e *MissingArgumentsError) Summary() string { return "Missing arguments" }

// TooManyArgumentsError lists arguments that could not be bound. Unnamed
// arguments are listed by position, e.g. `#2`.
type TooManyArgumentsError struct {
	Names []string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: %s", strings.Join(e.Names, ", "))
}

func (e *TooManyArgumentsError) Summary() string { return "Too many arguments" }

// UnexpectedArgumentError lists named arguments without a parameter of that
// name.
type UnexpectedArgumentError struct {
	Names []string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected arguments: %s", strings.Join(e.Names, ", "))
}

func (e *UnexpectedArgumentError) Summary() string { return "Unexpected argument" }

// Mismatch describes one parameter bound to a value of the wrong type.
type Mismatch struct {
	Name     string
	Expected value.Type
	Found    value.Type
}

// ParameterTypeMismatchError lists parameters bound to incompatible values.
type ParameterTypeMismatchError struct {
	Mismatches []Mismatch
}

// Names returns the parameter names in sorted order.
func (e *ParameterTypeMismatchError) Names() []string {
	names := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		names = append(names, m.Name)
	}
	return names
}

func (e *ParameterTypeMismatchError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("%s (expected %s, found %s)", m.Name, m.Expected, m.Found))
	}
	return "parameter type mismatch: " + strings.Join(parts, ", ")
}

func (e *ParameterTypeMismatchError) Summary() string { return "Parameter type mismatch" }

func newMismatchError(ms []Mismatch) *ParameterTypeMismatchError {
	sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	return &ParameterTypeMismatchError{Mismatches: ms}
}

// AmbiguousArgumentError is returned when an unnamed argument fits more
// than one parameter.
type AmbiguousArgumentError struct {
	Argument   string
	Candidates []string
}

func (e *AmbiguousArgumentError) Error() string {
	return fmt.Sprintf("argument %s is ambiguous, it matches parameters %s", e.Argument, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousArgumentError) Summary() string { return "Ambiguous argument" }
