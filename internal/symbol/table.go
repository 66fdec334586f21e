package symbol

import (
	"fmt"

	"github.com/specialistvlad/hclcad/internal/ident"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Handle addresses a node of a Table.
type Handle int

// NoHandle marks a missing parent.
const NoHandle Handle = -1

type entry struct {
	id     ident.Identifier
	handle Handle
	vis    Visibility
}

type node struct {
	def      *Definition
	vis      Visibility
	parent   Handle
	children []entry
	used     bool
	checked  bool
}

// Table is the arena holding every symbol of a run.
type Table struct {
	nodes []*node
	root  Handle
}

// NewTable creates an empty table without a root.
func NewTable() *Table {
	return &Table{root: NoHandle}
}

// New adds a detached symbol.
func (t *Table) New(def *Definition, vis Visibility) Symbol {
	t.nodes = append(t.nodes, &node{def: def, vis: vis, parent: NoHandle})
	h := Handle(len(t.nodes) - 1)
	return Symbol{table: t, handle: h, vis: vis}
}

// SetRoot makes s the root every global search starts from.
func (t *Table) SetRoot(s Symbol) { t.root = s.handle }

// Root returns the root symbol, or an invalid one if none was set.
func (t *Table) Root() Symbol {
	if t.root == NoHandle {
		return Symbol{}
	}
	return t.Symbol(t.root)
}

// Symbol returns the symbol at h with its own visibility.
func (t *Table) Symbol(h Handle) Symbol {
	return Symbol{table: t, handle: h, vis: t.node(h).vis}
}

func (t *Table) Len() int { return len(t.nodes) }

func (t *Table) node(h Handle) *node {
	if h < 0 || int(h) >= len(t.nodes) {
		panic(fmt.Sprintf("symbol: invalid handle %d", h))
	}
	return t.nodes[h]
}

func (n *node) find(name string) int {
	for i, e := range n.children {
		if e.id.Name == name {
			return i
		}
	}
	return -1
}

// insert adds an entry under parent. Re-inserting the same symbol under the
// same name is a no-op.
func (t *Table) insert(parent Handle, e entry) error {
	p := t.node(parent)
	if i := p.find(e.id.Name); i >= 0 {
		if p.children[i].handle == e.handle {
			return nil
		}
		return &DuplicateSymbolError{ID: e.id, Namespace: t.Symbol(parent).FullName()}
	}
	p.children = append(p.children, e)
	return nil
}

func (t *Table) remove(parent Handle, name string) {
	p := t.node(parent)
	if i := p.find(name); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
}

// AddChild makes child a child of parent under its own id. A child that
// already has a parent is moved.
func (t *Table) AddChild(parent, child Symbol) error {
	c := t.node(child.handle)
	e := entry{id: c.def.ID, handle: child.handle, vis: child.vis}
	if err := t.insert(parent.handle, e); err != nil {
		return err
	}
	if c.parent != NoHandle && c.parent != parent.handle {
		t.remove(c.parent, c.def.ID.Name)
	}
	c.parent = parent.handle
	return nil
}

// Link makes target reachable from parent under id without moving it.
func (t *Table) Link(parent Symbol, id ident.Identifier, target Symbol) error {
	return t.insert(parent.handle, entry{id: id, handle: target.handle, vis: target.vis})
}

// Symbol is a handle to a node of a Table, seen through one entry: the
// visibility is that of the entry, which may differ from the node's own
// when it was re-exported. The zero Symbol is invalid.
type Symbol struct {
	table  *Table
	handle Handle
	vis    Visibility
}

func (s Symbol) IsValid() bool { return s.table != nil }

func (s Symbol) Handle() Handle { return s.handle }

func (s Symbol) Table() *Table { return s.table }

// Same reports whether both symbols denote the same node.
func (s Symbol) Same(other Symbol) bool {
	return s.table == other.table && s.handle == other.handle
}

func (s Symbol) node() *node { return s.table.node(s.handle) }

func (s Symbol) Definition() *Definition { return s.node().def }

func (s Symbol) Kind() Kind { return s.node().def.Kind }

func (s Symbol) ID() ident.Identifier { return s.node().def.ID }

func (s Symbol) Visibility() Visibility { return s.vis }

// WithVisibility returns s seen with visibility v.
func (s Symbol) WithVisibility(v Visibility) Symbol {
	s.vis = v
	return s
}

// Parent returns the owning symbol.
func (s Symbol) Parent() (Symbol, bool) {
	p := s.node().parent
	if p == NoHandle {
		return Symbol{}, false
	}
	return s.table.Symbol(p), true
}

// FullName joins the ids of all owners below the root.
func (s Symbol) FullName() ident.QualifiedName {
	var rev []ident.Identifier
	for h := s.handle; h != NoHandle && h != s.table.root; h = s.table.node(h).parent {
		rev = append(rev, s.table.node(h).def.ID)
	}
	name := make(ident.QualifiedName, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		name = append(name, rev[i])
	}
	return name
}

// Children returns all child entries in insertion order.
func (s Symbol) Children() []Symbol {
	entries := s.node().children
	out := make([]Symbol, 0, len(entries))
	for _, e := range entries {
		out = append(out, Symbol{table: s.table, handle: e.handle, vis: e.vis})
	}
	return out
}

// Child returns the direct child entry named id without following aliases.
func (s Symbol) Child(id ident.Identifier) (Symbol, bool) {
	n := s.node()
	i := n.find(id.Name)
	if i < 0 {
		return Symbol{}, false
	}
	e := n.children[i]
	return Symbol{table: s.table, handle: e.handle, vis: e.vis}, true
}

// PublicChildren returns the public child entries, re-stamped with vis, for
// a wildcard import. Unresolved wildcard entries are not exported.
func (s Symbol) PublicChildren(vis Visibility) []Symbol {
	var out []Symbol
	for _, e := range s.node().children {
		if e.vis != Public || s.table.node(e.handle).def.Kind == KindUseAll {
			continue
		}
		out = append(out, Symbol{table: s.table, handle: e.handle, vis: vis})
	}
	return out
}

// Value returns the value of a constant or argument.
func (s Symbol) Value() (value.Value, error) {
	def := s.Definition()
	if !def.IsValue() {
		return value.None(), &NotAValueError{Name: s.FullName(), Kind: def.Kind}
	}
	return def.Value, nil
}

// SetValue stores the evaluated value of a constant or argument.
func (s Symbol) SetValue(v value.Value) error {
	def := s.Definition()
	if !def.IsValue() {
		return &NotAValueError{Name: s.FullName(), Kind: def.Kind}
	}
	def.Value = v
	return nil
}

func (s Symbol) SetUsed()        { s.node().used = true }
func (s Symbol) IsUsed() bool    { return s.node().used }
func (s Symbol) SetChecked()     { s.node().checked = true }
func (s Symbol) IsChecked() bool { return s.node().checked }

func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	name := s.FullName()
	if name.IsEmpty() {
		return s.ID().Name
	}
	return name.String()
}
