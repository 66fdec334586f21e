package value

import (
	"math"
	"strconv"
	"strings"
)

var unitSuffix = map[Kind]string{
	KindLength: "mm",
	KindArea:   "mm²",
	KindVolume: "mm³",
	KindAngle:  "°",
}

// formatFloat prints a float so that it never reads as an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// String renders a value for diagnostics and for the `print` builtin.
// Angles are rendered in degrees.
func (v Value) String() string {
	switch v.typ.kind {
	case KindInvalid:
		return "<invalid>"
	case KindInteger:
		return v.raw.AsBigFloat().Text('f', 0)
	case KindScalar:
		f, _ := v.AsFloat()
		return formatFloat(f)
	case KindLength, KindArea, KindVolume:
		f, _ := v.AsFloat()
		return formatFloat(f) + unitSuffix[v.typ.kind]
	case KindAngle:
		f, _ := v.AsFloat()
		return formatFloat(f*180/math.Pi) + unitSuffix[KindAngle]
	case KindBool:
		return strconv.FormatBool(v.raw.True())
	case KindString:
		return v.raw.AsString()
	case KindModel:
		return "model#" + strconv.Itoa(v.model)
	case KindList:
		parts := make([]string, 0, len(v.items))
		for _, item := range v.items {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTuple:
		parts := make([]string, 0, len(v.fields))
		for _, f := range v.fields {
			parts = append(parts, f.Name+" = "+f.Value.String())
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return "<unknown>"
}
