package symbol

import (
	"errors"

	"github.com/specialistvlad/hclcad/internal/ident"
)

// Search walks name segment by segment starting at s. Unresolved aliases on
// the way are followed transparently.
func (s Symbol) Search(name ident.QualifiedName) (Symbol, error) {
	return s.table.search(s, name, make(map[Handle]bool))
}

// Search looks name up from the root.
func (t *Table) Search(name ident.QualifiedName) (Symbol, error) {
	root := t.Root()
	if !root.IsValid() {
		return Symbol{}, &SymbolNotFoundError{Name: name}
	}
	return root.Search(name)
}

func (t *Table) search(from Symbol, name ident.QualifiedName, visiting map[Handle]bool) (Symbol, error) {
	cur := from
	for _, id := range name {
		child, ok := cur.Child(id)
		if !ok {
			return Symbol{}, &SymbolNotFoundError{Name: name}
		}
		resolved, err := t.follow(child, visiting)
		if err != nil {
			return Symbol{}, err
		}
		cur = resolved
	}
	return cur, nil
}

// follow replaces an alias by its target. The visibility of the entry the
// alias was reached through is kept.
func (t *Table) follow(s Symbol, visiting map[Handle]bool) (Symbol, error) {
	for s.Kind() == KindAlias {
		if visiting[s.handle] {
			return Symbol{}, &CircularAliasError{Name: s.FullName()}
		}
		visiting[s.handle] = true

		owner, _ := s.Parent()
		target, err := t.lookupFrom(owner, s.Definition().Target, visiting)
		if err != nil {
			return Symbol{}, err
		}
		s = target.WithVisibility(s.vis)
	}
	return s, nil
}

// lookupFrom searches name relative to owner first, then from the root.
func (t *Table) lookupFrom(owner Symbol, name ident.QualifiedName, visiting map[Handle]bool) (Symbol, error) {
	if owner.IsValid() {
		found, err := t.search(owner, name, visiting)
		if err == nil {
			return found, nil
		}
		var nf *SymbolNotFoundError
		if !errors.As(err, &nf) {
			return Symbol{}, err
		}
	}
	root := t.Root()
	if !root.IsValid() || (owner.IsValid() && owner.Same(root)) {
		return Symbol{}, &SymbolNotFoundError{Name: name}
	}
	return t.search(root, name, visiting)
}

// IsNotFound reports whether err is a SymbolNotFoundError.
func IsNotFound(err error) bool {
	var nf *SymbolNotFoundError
	return errors.As(err, &nf)
}
