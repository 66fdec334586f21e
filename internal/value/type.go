package value

import (
	"fmt"
	"strings"
)

// Kind classifies a Type.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindScalar
	KindLength
	KindArea
	KindVolume
	KindAngle
	KindBool
	KindString
	KindList
	KindTuple
	KindModel
)

var kindNames = map[Kind]string{
	KindInvalid: "Invalid",
	KindInteger: "Integer",
	KindScalar:  "Scalar",
	KindLength:  "Length",
	KindArea:    "Area",
	KindVolume:  "Volume",
	KindAngle:   "Angle",
	KindBool:    "Bool",
	KindString:  "String",
	KindList:    "List",
	KindTuple:   "Tuple",
	KindModel:   "Model",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type describes the shape of a Value. The zero Type is Invalid.
type Type struct {
	kind   Kind
	elem   *Type
	fields []Field
}

// Field is a named member of a tuple type.
type Field struct {
	Name string
	Type Type
}

var (
	Invalid = Type{kind: KindInvalid}
	Integer = Type{kind: KindInteger}
	Scalar  = Type{kind: KindScalar}
	Length  = Type{kind: KindLength}
	Area    = Type{kind: KindArea}
	Volume  = Type{kind: KindVolume}
	Angle   = Type{kind: KindAngle}
	Bool    = Type{kind: KindBool}
	String  = Type{kind: KindString}
	Model   = Type{kind: KindModel}
)

// ListOf returns the type of a list whose items are of type elem.
func ListOf(elem Type) Type {
	e := elem
	return Type{kind: KindList, elem: &e}
}

// TupleOf returns a named tuple type with the given fields in order.
func TupleOf(fields ...Field) Type {
	return Type{kind: KindTuple, fields: append([]Field(nil), fields...)}
}

// primitiveTypes maps type keywords used in source to their types.
var primitiveTypes = map[string]Type{
	"Integer": Integer,
	"Scalar":  Scalar,
	"Length":  Length,
	"Area":    Area,
	"Volume":  Volume,
	"Angle":   Angle,
	"Bool":    Bool,
	"String":  String,
	"Model":   Model,
}

// TypeByName looks up a primitive type keyword such as `Length`.
func TypeByName(name string) (Type, bool) {
	t, ok := primitiveTypes[name]
	return t, ok
}

func (t Type) Kind() Kind { return t.kind }

// Elem returns the item type of a list type and Invalid otherwise.
func (t Type) Elem() Type {
	if t.kind != KindList || t.elem == nil {
		return Invalid
	}
	return *t.elem
}

// Fields returns the fields of a tuple type.
func (t Type) Fields() []Field { return t.fields }

func (t Type) IsValid() bool { return t.kind != KindInvalid }

// IsNumeric returns true for integers, scalars and all quantities.
func (t Type) IsNumeric() bool {
	switch t.kind {
	case KindInteger, KindScalar, KindLength, KindArea, KindVolume, KindAngle:
		return true
	}
	return false
}

// IsQuantity returns true for numeric types that carry a unit.
func (t Type) IsQuantity() bool {
	switch t.kind {
	case KindLength, KindArea, KindVolume, KindAngle:
		return true
	}
	return false
}

// Equal compares types structurally.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindList:
		return t.Elem().Equal(other.Elem())
	case KindTuple:
		if len(t.fields) != len(other.fields) {
			return false
		}
		for i := range t.fields {
			if t.fields[i].Name != other.fields[i].Name || !t.fields[i].Type.Equal(other.fields[i].Type) {
				return false
			}
		}
	}
	return true
}

// CanConvertInto reports whether a value of type t may be bound where target
// is expected. Integers widen to scalars, and lists convert item-wise.
func (t Type) CanConvertInto(target Type) bool {
	if t.Equal(target) {
		return true
	}
	switch {
	case t.kind == KindInteger && target.kind == KindScalar:
		return true
	case t.kind == KindList && target.kind == KindList:
		// The empty list literal has no item type and fits every list.
		if !t.Elem().IsValid() {
			return true
		}
		return t.Elem().CanConvertInto(target.Elem())
	}
	return false
}

// IsArrayOf reports whether t is a list whose items can be bound where elem
// is expected. The empty list is never an array of anything.
func (t Type) IsArrayOf(elem Type) bool {
	if t.kind != KindList || !t.Elem().IsValid() {
		return false
	}
	return t.Elem().CanConvertInto(elem)
}

func (t Type) String() string {
	switch t.kind {
	case KindList:
		return "list(" + t.Elem().String() + ")"
	case KindTuple:
		parts := make([]string, 0, len(t.fields))
		for _, f := range t.fields {
			parts = append(parts, f.Name+": "+f.Type.String())
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return t.kind.String()
}
