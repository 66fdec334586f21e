package argmatch

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Tuple is the bound result of a match: an ordered map from parameter
// identifier to value without duplicate keys.
type Tuple struct {
	keys []ident.Identifier
	vals map[string]value.Value
}

// NewTuple creates an empty tuple.
func NewTuple() *Tuple {
	return &Tuple{vals: make(map[string]value.Value)}
}

// Insert adds a new entry. Inserting an existing key is an error.
func (t *Tuple) Insert(id ident.Identifier, v value.Value) error {
	if _, ok := t.vals[id.Name]; ok {
		return fmt.Errorf("duplicate tuple entry %q", id.Name)
	}
	t.keys = append(t.keys, id)
	t.vals[id.Name] = v
	return nil
}

// replace overwrites an existing entry in place.
func (t *Tuple) replace(name string, v value.Value) {
	t.vals[name] = v
}

// Get returns the value bound to name.
func (t *Tuple) Get(name string) (value.Value, bool) {
	v, ok := t.vals[name]
	return v, ok
}

// MustGet returns the value bound to name and panics if there is none.
// Builtins use it for parameters their signature guarantees.
func (t *Tuple) MustGet(name string) value.Value {
	v, ok := t.vals[name]
	if !ok {
		panic(fmt.Sprintf("argmatch: no entry %q in tuple", name))
	}
	return v
}

func (t *Tuple) Len() int { return len(t.keys) }

// Keys returns the identifiers in insertion order.
func (t *Tuple) Keys() []ident.Identifier { return t.keys }

// Entries returns the entries in insertion order.
func (t *Tuple) Entries() []value.NamedValue {
	out := make([]value.NamedValue, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, value.NamedValue{Name: k.Name, Value: t.vals[k.Name]})
	}
	return out
}

// Clone returns an independent copy.
func (t *Tuple) Clone() *Tuple {
	c := &Tuple{
		keys: append([]ident.Identifier(nil), t.keys...),
		vals: make(map[string]value.Value, len(t.vals)),
	}
	for k, v := range t.vals {
		c.vals[k] = v
	}
	return c
}

// With returns a copy in which name is bound to v.
func (t *Tuple) With(name string, v value.Value) *Tuple {
	c := t.Clone()
	c.replace(name, v)
	return c
}

func (t *Tuple) String() string {
	parts := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		parts = append(parts, k.Name+" = "+t.vals[k.Name].String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
