package argmatch

import (
	"github.com/specialistvlad/hclcad/internal/value"
)

// matcher holds the shared state of the passes of FindMatch.
type matcher struct {
	params []Parameter
	args   []Argument

	// argDone and paramBound are indexed like args and params.
	argDone    []bool
	paramBound []bool
	// defaulted marks parameters holding their default; they stay eligible
	// for the last type match pass.
	defaulted []bool
	// named marks parameters bound by name, which are type checked at the end.
	named []bool
	bound []value.Value
}

func newMatcher(params []Parameter, args []Argument) *matcher {
	return &matcher{
		params:     params,
		args:       args,
		argDone:    make([]bool, len(args)),
		paramBound: make([]bool, len(params)),
		defaulted:  make([]bool, len(params)),
		named:      make([]bool, len(params)),
		bound:      make([]value.Value, len(params)),
	}
}

// FindMatch binds args to params. See the package documentation for the
// passes. It never returns a partial tuple.
func FindMatch(params []Parameter, args []Argument) (*Tuple, error) {
	m := newMatcher(params, args)
	m.matchByID()
	if err := m.matchByType(false); err != nil {
		return nil, err
	}
	m.fillDefaults()
	if err := m.matchByType(true); err != nil {
		return nil, err
	}
	return m.complete()
}

func (m *matcher) bind(pi, ai int) {
	m.paramBound[pi] = true
	m.defaulted[pi] = false
	m.bound[pi] = m.args[ai].Value
	m.argDone[ai] = true
}

// matchByID binds named arguments to parameters of the same name, whatever
// their type.
func (m *matcher) matchByID() {
	for ai, arg := range m.args {
		if !arg.IsNamed() {
			continue
		}
		for pi, p := range m.params {
			if !m.paramBound[pi] && p.ID.Equal(arg.ID) {
				m.bind(pi, ai)
				m.named[pi] = true
				break
			}
		}
	}
}

func exactMatch(t, p value.Type) bool {
	return t.Equal(p) || (t.Kind() == value.KindList && t.Elem().Equal(p))
}

func convertibleMatch(t, p value.Type) bool {
	return t.CanConvertInto(p) || t.IsArrayOf(p)
}

// matchByType binds each remaining unnamed argument to the one parameter
// its type selects. Without withDefaults, parameters that have a default are
// only chosen when they are the single candidate; with withDefaults,
// parameters currently holding their default are candidates like any other.
func (m *matcher) matchByType(withDefaults bool) error {
	for ai, arg := range m.args {
		if m.argDone[ai] || arg.IsNamed() {
			continue
		}

		for _, match := range []func(t, p value.Type) bool{exactMatch, convertibleMatch} {
			var candidates, required []int
			for pi, p := range m.params {
				eligible := !m.paramBound[pi] || (withDefaults && m.defaulted[pi])
				if !eligible || !match(arg.Value.Type(), p.typ) {
					continue
				}
				candidates = append(candidates, pi)
				if withDefaults || !p.hasDef {
					required = append(required, pi)
				}
			}
			if len(candidates) == 0 {
				continue
			}

			switch {
			case len(required) == 1:
				m.bind(required[0], ai)
			case len(candidates) == 1:
				m.bind(candidates[0], ai)
			case len(required) > 1:
				return m.ambiguous(ai, required)
			default:
				// Several candidates that all have a default: leave the
				// argument for the pass after default filling.
			}
			break
		}
	}
	return nil
}

func (m *matcher) ambiguous(ai int, candidates []int) error {
	names := make([]string, 0, len(candidates))
	for _, pi := range candidates {
		names = append(names, m.params[pi].ID.Name)
	}
	return &AmbiguousArgumentError{Argument: m.args[ai].label(ai), Candidates: sorted(names)}
}

// fillDefaults binds every unbound parameter that has a default.
func (m *matcher) fillDefaults() {
	for pi, p := range m.params {
		if !m.paramBound[pi] && p.hasDef {
			m.paramBound[pi] = true
			m.defaulted[pi] = true
			m.bound[pi] = p.def
		}
	}
}

// complete checks named bindings, reports what is missing or left over and
// converts the bound values to the parameter types.
func (m *matcher) complete() (*Tuple, error) {
	var mismatches []Mismatch
	for pi, p := range m.params {
		if m.named[pi] && !convertibleMatch(m.bound[pi].Type(), p.typ) {
			mismatches = append(mismatches, Mismatch{Name: p.ID.Name, Expected: p.typ, Found: m.bound[pi].Type()})
		}
	}
	if len(mismatches) > 0 {
		return nil, newMismatchError(mismatches)
	}

	if err := m.missing(); err != nil {
		return nil, err
	}
	if err := m.leftover(); err != nil {
		return nil, err
	}
	return m.tuple()
}

func (m *matcher) missing() error {
	var names []string
	for pi, p := range m.params {
		if !m.paramBound[pi] {
			names = append(names, p.ID.Name)
		}
	}
	if len(names) > 0 {
		return &MissingArgumentsError{Names: sorted(names)}
	}
	return nil
}

func (m *matcher) leftover() error {
	var names []string
	for ai, arg := range m.args {
		if !m.argDone[ai] {
			names = append(names, arg.label(ai))
		}
	}
	if len(names) > 0 {
		return &TooManyArgumentsError{Names: sorted(names)}
	}
	return nil
}

// tuple builds the result in parameter order. Values are converted to the
// parameter type; lists of the parameter type are kept as lists with
// converted items so they can be expanded later.
func (m *matcher) tuple() (*Tuple, error) {
	t := NewTuple()
	for pi, p := range m.params {
		v := m.bound[pi]
		target := p.typ
		if !v.Type().CanConvertInto(target) && v.Type().IsArrayOf(target) {
			target = value.ListOf(target)
		}
		converted, err := value.Convert(v, target)
		if err != nil {
			return nil, newMismatchError([]Mismatch{{Name: p.ID.Name, Expected: p.typ, Found: v.Type()}})
		}
		if err := t.Insert(p.ID, converted); err != nil {
			return nil, err
		}
	}
	return t, nil
}
