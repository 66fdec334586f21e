package argmatch

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Parameter is a declared parameter with an optional type and default.
type Parameter struct {
	ID     ident.Identifier
	typ    value.Type
	def    value.Value
	hasDef bool
}

// NewParameter creates a parameter. A plain number default declared for a
// quantity type is read in base units, so `Length = 4.0` means 4mm. An
// untyped parameter takes the type of its default.
func NewParameter(id ident.Identifier, typ value.Type, def *value.Value) (Parameter, error) {
	p := Parameter{ID: id, typ: typ}
	if def == nil {
		if !typ.IsValid() {
			return Parameter{}, fmt.Errorf("parameter %q needs a type or a default", id.Name)
		}
		return p, nil
	}

	d := *def
	if !typ.IsValid() {
		p.typ = d.Type()
	} else {
		d = value.WithUnit(d, typ)
		converted, err := value.Convert(d, typ)
		if err != nil {
			return Parameter{}, fmt.Errorf("default of parameter %q: %w", id.Name, err)
		}
		d = converted
	}
	p.def = d
	p.hasDef = true
	return p, nil
}

// MustParameter is NewParameter for statically known parameters.
func MustParameter(name string, typ value.Type, def *value.Value) Parameter {
	p, err := NewParameter(ident.New(name), typ, def)
	if err != nil {
		panic(err)
	}
	return p
}

// Default returns a pointer to v, for use with NewParameter.
func Default(v value.Value) *value.Value { return &v }

func (p Parameter) Type() value.Type { return p.typ }

// DefaultValue returns the default and whether there is one.
func (p Parameter) DefaultValue() (value.Value, bool) { return p.def, p.hasDef }

func (p Parameter) String() string {
	if p.hasDef {
		return fmt.Sprintf("%s: %s = %s", p.ID.Name, p.typ, p.def)
	}
	return fmt.Sprintf("%s: %s", p.ID.Name, p.typ)
}

// FormatParameters renders a parameter list as `(a: Length, b: Scalar = 1.0)`.
func FormatParameters(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Argument is an evaluated call argument. ID is empty for unnamed ones.
type Argument struct {
	ID    ident.Identifier
	Value value.Value
	Rng   hcl.Range
}

// Named creates a named argument.
func Named(name string, v value.Value) Argument {
	return Argument{ID: ident.New(name), Value: v}
}

// Positional creates an unnamed argument.
func Positional(v value.Value) Argument {
	return Argument{Value: v}
}

func (a Argument) IsNamed() bool { return !a.ID.IsEmpty() }

// label names an argument in diagnostics. Unnamed arguments are labelled by
// their 1-based position.
func (a Argument) label(index int) string {
	if a.IsNamed() {
		return a.ID.Name
	}
	return fmt.Sprintf("#%d", index+1)
}
