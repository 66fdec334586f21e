package eval

import (
	"fmt"

	"github.com/specialistvlad/hclcad/internal/model"
	"github.com/specialistvlad/hclcad/internal/syntax"
	"github.com/specialistvlad/hclcad/internal/value"
)

// attributeTypes lists the known attributes and the type of their value.
var attributeTypes = map[string]value.Type{
	"color":      value.String,
	"export":     value.String,
	"layer":      value.String,
	"resolution": value.Length,
}

// UnknownAttributeError is reported for an attribute name that means
// nothing.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute '%s' ignored", e.Name)
}

func (e *UnknownAttributeError) Summary() string { return "Unknown attribute" }

// InvalidAttributeError is reported for an attribute whose value cannot be
// used.
type InvalidAttributeError struct {
	Name string
	Err  error
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("attribute '%s' ignored: %s", e.Name, e.Err)
}

func (e *InvalidAttributeError) Unwrap() error   { return e.Err }
func (e *InvalidAttributeError) Summary() string { return "Invalid attribute" }

// attributes evaluates attrs and sets them on every model. A malformed
// attribute is reported as a warning and dropped.
func (c *Context) attributes(attrs []*syntax.Attribute, models []model.Handle) {
	for _, a := range attrs {
		want, known := attributeTypes[a.ID.Name]
		if !known {
			c.warnAt(a.Rng, &UnknownAttributeError{Name: a.ID.Name})
			continue
		}

		v, err := c.Expr(a.Expr)
		if err == nil {
			v, err = value.Convert(v, want)
		}
		if err != nil {
			c.warnAt(a.Rng, &InvalidAttributeError{Name: a.ID.Name, Err: err})
			continue
		}
		if len(models) == 0 {
			c.warnAt(a.Rng, &InvalidAttributeError{Name: a.ID.Name, Err: fmt.Errorf("the expression produced no model")})
			continue
		}

		for _, h := range models {
			c.models.SetAttribute(h, a.ID.Name, v)
		}
	}
}
