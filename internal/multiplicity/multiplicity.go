// Package multiplicity expands one call into several when list values are
// bound to parameters declared with the list's item type.
//
// A call `circle(radius = [mm(1), mm(2)])` binds a list of lengths to a
// Length parameter. The call then runs once per item, and with several such
// parameters once per combination of their items.
package multiplicity

import (
	"errors"
	"sort"

	"github.com/specialistvlad/hclcad/internal/argmatch"
	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Multiplicity maps each multiplier parameter to the items of its list.
type Multiplicity struct {
	base *argmatch.Tuple
	// ids are sorted by name; the first one changes fastest.
	ids   []ident.Identifier
	items map[string][]value.Value
}

// New detects the multipliers of a bound tuple. It returns false when no
// parameter is bound to a list of its declared type.
func New(tuple *argmatch.Tuple, params []argmatch.Parameter) (*Multiplicity, bool) {
	m := &Multiplicity{base: tuple, items: make(map[string][]value.Value)}
	for _, p := range params {
		v, ok := tuple.Get(p.ID.Name)
		if !ok {
			continue
		}
		if v.Type().CanConvertInto(p.Type()) || !v.Type().IsArrayOf(p.Type()) {
			continue
		}
		m.ids = append(m.ids, p.ID)
		m.items[p.ID.Name] = v.Items()
	}
	if len(m.ids) == 0 {
		return nil, false
	}
	sort.Slice(m.ids, func(i, j int) bool { return m.ids[i].Name < m.ids[j].Name })
	return m, true
}

// Multipliers returns the multiplier identifiers in visiting order.
func (m *Multiplicity) Multipliers() []ident.Identifier { return m.ids }

// Len is the number of combinations, the product of all list lengths.
func (m *Multiplicity) Len() int {
	n := 1
	for _, id := range m.ids {
		n *= len(m.items[id.Name])
	}
	return n
}

// Combinations returns every full binding, visiting the multipliers like an
// odometer: the first multiplier advances on every step and carries into
// the next one when it wraps.
func (m *Multiplicity) Combinations() []*argmatch.Tuple {
	total := m.Len()
	out := make([]*argmatch.Tuple, 0, total)
	if total == 0 {
		return out
	}

	indices := make([]int, len(m.ids))
	for {
		c := m.base.Clone()
		for i, id := range m.ids {
			c = c.With(id.Name, m.items[id.Name][indices[i]])
		}
		out = append(out, c)

		i := 0
		for ; i < len(indices); i++ {
			indices[i]++
			if indices[i] < len(m.items[m.ids[i].Name]) {
				break
			}
			indices[i] = 0
		}
		if i == len(indices) {
			return out
		}
	}
}

// ErrNoCombinations is returned when a multiplier is bound to an empty list.
var ErrNoCombinations = errors.New("call expands to zero combinations")

// Call invokes f once per combination. A single combination yields f's
// result as is; several yield the list of results in visiting order.
func (m *Multiplicity) Call(f func(*argmatch.Tuple) (value.Value, error)) (value.Value, error) {
	combos := m.Combinations()
	switch len(combos) {
	case 0:
		return value.None(), ErrNoCombinations
	case 1:
		return f(combos[0])
	}

	results := make([]value.Value, 0, len(combos))
	for _, c := range combos {
		v, err := f(c)
		if err != nil {
			return value.None(), err
		}
		results = append(results, v)
	}
	return value.List(results...)
}
