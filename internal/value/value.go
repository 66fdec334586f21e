package value

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Value is an immutable runtime value. The zero Value is Invalid and stands
// for "no value", e.g. the result of a statement that produced nothing.
type Value struct {
	typ    Type
	raw    cty.Value
	items  []Value
	fields []NamedValue
	model  int
}

// NamedValue is a member of a tuple value.
type NamedValue struct {
	Name  string
	Value Value
}

// None returns the invalid value.
func None() Value { return Value{} }

// Int creates an Integer.
func Int(i int64) Value {
	return Value{typ: Integer, raw: cty.NumberIntVal(i)}
}

// Float creates a Scalar.
func Float(f float64) Value {
	return Value{typ: Scalar, raw: cty.NumberFloatVal(f)}
}

// Quantity creates a numeric value of type t from a number in base units.
// It panics if t is not numeric.
func Quantity(f float64, t Type) Value {
	if !t.IsNumeric() {
		panic(fmt.Sprintf("value: %s is not a numeric type", t))
	}
	if t.kind == KindInteger {
		return Int(int64(f))
	}
	return Value{typ: t, raw: cty.NumberFloatVal(f)}
}

// Mm creates a Length in millimeters.
func Mm(f float64) Value { return Quantity(f, Length) }

// Str creates a String.
func Str(s string) Value {
	return Value{typ: String, raw: cty.StringVal(s)}
}

// Boolean creates a Bool.
func Boolean(b bool) Value {
	return Value{typ: Bool, raw: cty.BoolVal(b)}
}

// ModelRef wraps an opaque model handle.
func ModelRef(id int) Value {
	return Value{typ: Model, model: id}
}

// List creates a list value. Integers are widened to scalars when mixed with
// scalars; any other mix of item types is an error.
func List(items ...Value) (Value, error) {
	if len(items) == 0 {
		return Value{typ: ListOf(Invalid)}, nil
	}
	elem := items[0].typ
	for _, item := range items[1:] {
		switch {
		case item.typ.Equal(elem):
		case item.typ.CanConvertInto(elem):
		case elem.CanConvertInto(item.typ):
			elem = item.typ
		default:
			return None(), fmt.Errorf("list items must share a type, found %s and %s", elem, item.typ)
		}
	}
	converted := make([]Value, 0, len(items))
	for _, item := range items {
		c, err := Convert(item, elem)
		if err != nil {
			return None(), err
		}
		converted = append(converted, c)
	}
	return Value{typ: ListOf(elem), items: converted}, nil
}

// MustList is List for items known to be homogeneous.
func MustList(items ...Value) Value {
	v, err := List(items...)
	if err != nil {
		panic(err)
	}
	return v
}

// Tuple creates a named tuple. Field names must be unique.
func Tuple(fields ...NamedValue) (Value, error) {
	types := make([]Field, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return None(), fmt.Errorf("duplicate tuple field %q", f.Name)
		}
		seen[f.Name] = true
		types = append(types, Field{Name: f.Name, Type: f.Value.typ})
	}
	return Value{typ: TupleOf(types...), fields: append([]NamedValue(nil), fields...)}, nil
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsInvalid() bool { return !v.typ.IsValid() }

// Cty returns the underlying cty value for numbers, booleans and strings.
func (v Value) Cty() cty.Value { return v.raw }

// Items returns the items of a list value.
func (v Value) Items() []Value { return v.items }

// Fields returns the members of a tuple value.
func (v Value) Fields() []NamedValue { return v.fields }

// Field looks up a tuple member by name.
func (v Value) Field(name string) (Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return None(), false
}

// ModelID returns the model handle of a Model value.
func (v Value) ModelID() (int, bool) {
	if v.typ.kind != KindModel {
		return 0, false
	}
	return v.model, true
}

// AsFloat returns the number in base units.
func (v Value) AsFloat() (float64, bool) {
	if !v.typ.IsNumeric() {
		return 0, false
	}
	var f float64
	if err := gocty.FromCtyValue(v.raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// AsInt returns the integer payload of an Integer.
func (v Value) AsInt() (int64, bool) {
	if v.typ.kind != KindInteger {
		return 0, false
	}
	var i int64
	if err := gocty.FromCtyValue(v.raw, &i); err != nil {
		return 0, false
	}
	return i, true
}

func (v Value) AsBool() (bool, bool) {
	if v.typ.kind != KindBool {
		return false, false
	}
	return v.raw.True(), true
}

func (v Value) AsString() (string, bool) {
	if v.typ.kind != KindString {
		return "", false
	}
	return v.raw.AsString(), true
}

// Equal compares two values structurally. Integer 2 and Scalar 2.0 differ.
func (v Value) Equal(other Value) bool {
	if !v.typ.Equal(other.typ) {
		return false
	}
	switch v.typ.kind {
	case KindInvalid:
		return true
	case KindModel:
		return v.model == other.model
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindTuple:
		for i := range v.fields {
			if !v.fields[i].Value.Equal(other.fields[i].Value) {
				return false
			}
		}
		return true
	}
	return v.raw.Equals(other.raw).True()
}
