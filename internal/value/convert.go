package value

import (
	"fmt"
)

// TypeMismatchError is returned when a value cannot be used as a given type.
type TypeMismatchError struct {
	Expected Type
	Found    Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// TypeCheck verifies that v can be bound where t is expected.
func TypeCheck(v Value, t Type) error {
	if !v.typ.CanConvertInto(t) {
		return &TypeMismatchError{Expected: t, Found: v.typ}
	}
	return nil
}

// Convert returns v as a value of type target.
func Convert(v Value, target Type) (Value, error) {
	if v.typ.Equal(target) {
		return v, nil
	}
	if !v.typ.CanConvertInto(target) {
		return None(), &TypeMismatchError{Expected: target, Found: v.typ}
	}
	switch v.typ.kind {
	case KindInteger:
		f, _ := v.AsFloat()
		return Float(f), nil
	case KindList:
		items := make([]Value, 0, len(v.items))
		for _, item := range v.items {
			c, err := Convert(item, target.Elem())
			if err != nil {
				return None(), err
			}
			items = append(items, c)
		}
		return Value{typ: target, items: items}, nil
	}
	return None(), &TypeMismatchError{Expected: target, Found: v.typ}
}

// WithUnit reinterprets a plain number as a quantity of type t in base
// units, so that `default = 4.0` declared for a Length means 4mm. Values
// that are not plain numbers, or targets that are not quantities, are
// returned unchanged.
func WithUnit(v Value, t Type) Value {
	if !t.IsQuantity() {
		return v
	}
	if v.typ.kind != KindInteger && v.typ.kind != KindScalar {
		return v
	}
	f, _ := v.AsFloat()
	return Quantity(f, t)
}
