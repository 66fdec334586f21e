package value

import (
	"fmt"
	"math"
)

// OperatorError is returned when an operator is applied to unsupported
// operand types.
type OperatorError struct {
	Op    string
	Left  Type
	Right Type
}

func (e *OperatorError) Error() string {
	if e.Right.IsValid() {
		return fmt.Sprintf("operator %q is not defined for %s and %s", e.Op, e.Left, e.Right)
	}
	return fmt.Sprintf("operator %q is not defined for %s", e.Op, e.Left)
}

// dimension returns the length exponent of a numeric kind. Angles are
// tracked separately.
func dimension(k Kind) int {
	switch k {
	case KindLength:
		return 1
	case KindArea:
		return 2
	case KindVolume:
		return 3
	}
	return 0
}

func kindForDimension(d int) (Kind, bool) {
	switch d {
	case 0:
		return KindScalar, true
	case 1:
		return KindLength, true
	case 2:
		return KindArea, true
	case 3:
		return KindVolume, true
	}
	return KindInvalid, false
}

func isPlain(k Kind) bool { return k == KindInteger || k == KindScalar }

// additiveType returns the result type of adding or subtracting numbers.
func additiveType(a, b Type) (Type, bool) {
	switch {
	case a.kind == b.kind:
		return a, true
	case isPlain(a.kind) && isPlain(b.kind):
		return Scalar, true
	}
	return Invalid, false
}

// Add adds numbers of the same dimension, concatenates strings and lists.
func Add(a, b Value) (Value, error) {
	switch {
	case a.typ.kind == KindString && b.typ.kind == KindString:
		return Str(a.raw.AsString() + b.raw.AsString()), nil
	case a.typ.kind == KindList && b.typ.kind == KindList:
		items := append(append([]Value(nil), a.items...), b.items...)
		return List(items...)
	case a.typ.IsNumeric() && b.typ.IsNumeric():
		t, ok := additiveType(a.typ, b.typ)
		if !ok {
			break
		}
		return Value{typ: t, raw: a.raw.Add(b.raw)}, nil
	}
	return None(), &OperatorError{Op: "+", Left: a.typ, Right: b.typ}
}

// Sub subtracts numbers of the same dimension.
func Sub(a, b Value) (Value, error) {
	if a.typ.IsNumeric() && b.typ.IsNumeric() {
		if t, ok := additiveType(a.typ, b.typ); ok {
			return Value{typ: t, raw: a.raw.Subtract(b.raw)}, nil
		}
	}
	return None(), &OperatorError{Op: "-", Left: a.typ, Right: b.typ}
}

// Mul multiplies numbers; lengths multiply into areas and volumes.
func Mul(a, b Value) (Value, error) {
	if !a.typ.IsNumeric() || !b.typ.IsNumeric() {
		return None(), &OperatorError{Op: "*", Left: a.typ, Right: b.typ}
	}
	if a.typ.kind == KindInteger && b.typ.kind == KindInteger {
		return Value{typ: Integer, raw: a.raw.Multiply(b.raw)}, nil
	}

	var t Type
	switch {
	case a.typ.kind == KindAngle && isPlain(b.typ.kind), isPlain(a.typ.kind) && b.typ.kind == KindAngle:
		t = Angle
	case a.typ.kind == KindAngle || b.typ.kind == KindAngle:
		return None(), &OperatorError{Op: "*", Left: a.typ, Right: b.typ}
	default:
		k, ok := kindForDimension(dimension(a.typ.kind) + dimension(b.typ.kind))
		if !ok {
			return None(), &OperatorError{Op: "*", Left: a.typ, Right: b.typ}
		}
		t = Type{kind: k}
	}
	return Value{typ: t, raw: a.raw.Multiply(b.raw)}, nil
}

// Div divides numbers. Integer division yields a Scalar.
func Div(a, b Value) (Value, error) {
	if !a.typ.IsNumeric() || !b.typ.IsNumeric() {
		return None(), &OperatorError{Op: "/", Left: a.typ, Right: b.typ}
	}
	if d, _ := b.AsFloat(); d == 0 {
		return None(), fmt.Errorf("division by zero")
	}

	var t Type
	switch {
	case a.typ.kind == KindAngle && b.typ.kind == KindAngle:
		t = Scalar
	case a.typ.kind == KindAngle && isPlain(b.typ.kind):
		t = Angle
	case a.typ.kind == KindAngle || b.typ.kind == KindAngle:
		return None(), &OperatorError{Op: "/", Left: a.typ, Right: b.typ}
	default:
		k, ok := kindForDimension(dimension(a.typ.kind) - dimension(b.typ.kind))
		if !ok {
			return None(), &OperatorError{Op: "/", Left: a.typ, Right: b.typ}
		}
		t = Type{kind: k}
	}
	return Value{typ: t, raw: a.raw.Divide(b.raw)}, nil
}

// Mod computes the remainder of numbers of the same dimension.
func Mod(a, b Value) (Value, error) {
	if a.typ.IsNumeric() && b.typ.IsNumeric() {
		if t, ok := additiveType(a.typ, b.typ); ok {
			if d, _ := b.AsFloat(); d == 0 {
				return None(), fmt.Errorf("modulo by zero")
			}
			return Value{typ: t, raw: a.raw.Modulo(b.raw)}, nil
		}
	}
	return None(), &OperatorError{Op: "%", Left: a.typ, Right: b.typ}
}

// Neg negates a number.
func Neg(a Value) (Value, error) {
	if !a.typ.IsNumeric() {
		return None(), &OperatorError{Op: "-", Left: a.typ}
	}
	return Value{typ: a.typ, raw: a.raw.Negate()}, nil
}

// Not negates a boolean.
func Not(a Value) (Value, error) {
	b, ok := a.AsBool()
	if !ok {
		return None(), &OperatorError{Op: "!", Left: a.typ}
	}
	return Boolean(!b), nil
}

// And is the logical conjunction of two booleans.
func And(a, b Value) (Value, error) {
	x, okA := a.AsBool()
	y, okB := b.AsBool()
	if !okA || !okB {
		return None(), &OperatorError{Op: "&&", Left: a.typ, Right: b.typ}
	}
	return Boolean(x && y), nil
}

// Or is the logical disjunction of two booleans.
func Or(a, b Value) (Value, error) {
	x, okA := a.AsBool()
	y, okB := b.AsBool()
	if !okA || !okB {
		return None(), &OperatorError{Op: "||", Left: a.typ, Right: b.typ}
	}
	return Boolean(x || y), nil
}

// Compare orders two numbers of the same dimension or two strings. It
// returns -1, 0 or 1.
func Compare(a, b Value) (int, error) {
	switch {
	case a.typ.kind == KindString && b.typ.kind == KindString:
		x, y := a.raw.AsString(), b.raw.AsString()
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	case a.typ.IsNumeric() && b.typ.IsNumeric():
		if _, ok := additiveType(a.typ, b.typ); !ok {
			break
		}
		return a.raw.AsBigFloat().Cmp(b.raw.AsBigFloat()), nil
	}
	return 0, &OperatorError{Op: "<", Left: a.typ, Right: b.typ}
}

// Sqrt returns the square root of a Scalar, Area or Integer.
func Sqrt(a Value) (Value, error) {
	f, ok := a.AsFloat()
	if !ok || f < 0 {
		return None(), fmt.Errorf("cannot take the square root of %s", a)
	}
	switch a.typ.kind {
	case KindInteger, KindScalar:
		return Float(math.Sqrt(f)), nil
	case KindArea:
		return Mm(math.Sqrt(f)), nil
	}
	return None(), &OperatorError{Op: "sqrt", Left: a.typ}
}

// Abs returns the absolute value of a number, keeping its type.
func Abs(a Value) (Value, error) {
	if !a.typ.IsNumeric() {
		return None(), &OperatorError{Op: "abs", Left: a.typ}
	}
	if a.raw.AsBigFloat().Sign() < 0 {
		return Neg(a)
	}
	return a, nil
}
