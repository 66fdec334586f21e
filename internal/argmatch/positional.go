package argmatch

// FindMatchPositional binds named arguments by exact name and type, then
// consumes unnamed arguments from left to right, each into the first
// unbound parameter its type fits. Parameters left unbound take their
// default.
func FindMatchPositional(params []Parameter, args []Argument) (*Tuple, error) {
	m := newMatcher(params, args)

	var unexpected []string
	var mismatches []Mismatch
	for ai, arg := range args {
		if !arg.IsNamed() {
			continue
		}
		pi := m.paramIndex(arg)
		if pi < 0 {
			unexpected = append(unexpected, arg.ID.Name)
			m.argDone[ai] = true
			continue
		}
		p := params[pi]
		if !convertibleMatch(arg.Value.Type(), p.typ) {
			mismatches = append(mismatches, Mismatch{Name: p.ID.Name, Expected: p.typ, Found: arg.Value.Type()})
		}
		m.bind(pi, ai)
	}
	if len(mismatches) > 0 {
		return nil, newMismatchError(mismatches)
	}
	if len(unexpected) > 0 {
		return nil, &UnexpectedArgumentError{Names: sorted(unexpected)}
	}

	for ai, arg := range args {
		if m.argDone[ai] {
			continue
		}
		for pi, p := range params {
			if !m.paramBound[pi] && convertibleMatch(arg.Value.Type(), p.typ) {
				m.bind(pi, ai)
				break
			}
		}
	}

	m.fillDefaults()
	if err := m.missing(); err != nil {
		return nil, err
	}
	if err := m.leftover(); err != nil {
		return nil, err
	}
	return m.tuple()
}

// paramIndex returns the index of the unbound parameter named like arg, or
// -1.
func (m *matcher) paramIndex(arg Argument) int {
	for pi, p := range m.params {
		if !m.paramBound[pi] && p.ID.Equal(arg.ID) {
			return pi
		}
	}
	return -1
}
