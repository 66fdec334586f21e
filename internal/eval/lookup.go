package eval

import (
	"errors"
	"sort"

	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/symbol"
)

// origin is one place a name may be found in.
type origin struct {
	name   string
	lookup func(ident.QualifiedName) (symbol.Symbol, error)
}

func notFound(name ident.QualifiedName) error {
	return &symbol.SymbolNotFoundError{Name: name}
}

func (c *Context) origins() []origin {
	return []origin{
		{name: "local", lookup: c.lookupLocal},
		{name: "module", lookup: c.lookupModule},
		{name: "property", lookup: c.lookupProperty},
		{name: "workbench", lookup: c.lookupWorkbench},
		{name: "global", lookup: c.table.Search},
	}
}

// Lookup finds the symbol a name denotes in the current scope. All origins
// finding the name must agree on the same symbol.
func (c *Context) Lookup(name ident.QualifiedName) (symbol.Symbol, error) {
	sym, foundIn, err := lookupIn(name, c.origins())
	if err != nil {
		return symbol.Symbol{}, err
	}
	c.logger.Debug("Symbol found.", "name", name.String(), "symbol", sym.String(), "origins", foundIn)
	sym.SetUsed()
	return sym, nil
}

// lookupIn queries every origin. Origins are consulted in name order, so the
// outcome does not depend on the order they are given in.
func lookupIn(name ident.QualifiedName, origins []origin) (symbol.Symbol, []string, error) {
	sorted := make([]origin, len(origins))
	copy(sorted, origins)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	var (
		found     []symbol.Symbol
		foundIn   []string
		ambiguity error
	)
	for _, o := range sorted {
		sym, err := o.lookup(name)
		switch {
		case err == nil:
			found = append(found, sym)
			foundIn = append(foundIn, o.name)
		case symbol.IsNotFound(err):
		case isAmbiguous(err):
			if ambiguity == nil {
				ambiguity = err
			}
		default:
			return symbol.Symbol{}, nil, err
		}
	}

	if ambiguity != nil {
		return symbol.Symbol{}, nil, ambiguity
	}
	if len(found) == 0 {
		return symbol.Symbol{}, nil, notFound(name)
	}
	for _, s := range found[1:] {
		if !s.Same(found[0]) {
			symbols := make([]string, 0, len(found))
			for _, f := range found {
				symbols = append(symbols, f.String())
			}
			return symbol.Symbol{}, nil, &AmbiguousSymbolError{Name: name, Origins: foundIn, Symbols: symbols}
		}
	}
	return found[0], foundIn, nil
}

func isAmbiguous(err error) bool {
	var amb *AmbiguousSymbolError
	return errors.As(err, &amb)
}

func (c *Context) lookupLocal(name ident.QualifiedName) (symbol.Symbol, error) {
	first, rest := name.SplitFirst()
	sym, ok := c.stack.Fetch(first)
	if !ok {
		return symbol.Symbol{}, notFound(name)
	}
	return sym.Search(rest)
}

func (c *Context) lookupModule(name ident.QualifiedName) (symbol.Symbol, error) {
	mod, ok := c.stack.CurrentModule()
	if !ok || !mod.IsValid() {
		return symbol.Symbol{}, notFound(name)
	}
	return mod.Search(name)
}

// lookupProperty exposes the properties of the workpiece under
// construction, including its bound parameters, as symbols.
func (c *Context) lookupProperty(name ident.QualifiedName) (symbol.Symbol, error) {
	h, ok := c.stack.CurrentModel()
	if !ok || !name.IsSingle() {
		return symbol.Symbol{}, notFound(name)
	}
	id := name[0]
	v, ok := c.models.Prop(h, id.Name)
	if !ok {
		return symbol.Symbol{}, notFound(name)
	}

	key := propKey{model: h, name: id.Name}
	sym, cached := c.props[key]
	if !cached {
		sym = c.table.New(symbol.Argument(id, v), symbol.Private)
		c.props[key] = sym
	}
	if err := sym.SetValue(v); err != nil {
		return symbol.Symbol{}, err
	}
	return sym, nil
}

func (c *Context) lookupWorkbench(name ident.QualifiedName) (symbol.Symbol, error) {
	f, ok := c.stack.CurrentWorkbench()
	if !ok {
		return symbol.Symbol{}, notFound(name)
	}
	return f.Symbol.Search(name)
}
