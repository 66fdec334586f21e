package symbol

import (
	"fmt"
	"io"
	"strings"

	"github.com/edwingeng/deque"
)

// Print writes the tree below s, one entry per line. Re-exported entries are
// marked with the full name of their target.
func (s Symbol) Print(w io.Writer) error {
	return printSymbol(w, s.ID().Name, s, Symbol{}, 0)
}

func printSymbol(w io.Writer, name string, sym, parent Symbol, depth int) error {
	line := fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", depth), sym.Visibility(), sym.Kind(), name)
	owner, _ := sym.Parent()
	linked := depth > 0 && !owner.Same(parent)
	if linked {
		line += " -> " + sym.String()
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if linked {
		return nil
	}
	for _, e := range sym.node().children {
		c := Symbol{table: sym.table, handle: e.handle, vis: e.vis}
		if err := printSymbol(w, e.id.Name, c, sym, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits every symbol owned below s breadth-first, s included. Linked
// entries are not followed. Returning false from visit skips the children.
func (s Symbol) Walk(visit func(Symbol) bool) {
	queue := deque.NewDeque()
	queue.PushBack(s)
	for !queue.Empty() {
		cur := queue.Front().(Symbol)
		queue.PopFront()
		if !visit(cur) {
			continue
		}
		for _, c := range cur.Children() {
			if owner, ok := c.Parent(); ok && owner.Same(cur) {
				queue.PushBack(c)
			}
		}
	}
}

// Unused returns the user defined symbols below s that were never looked up,
// in breadth-first order. Builtins and namespaces are not reported.
func (s Symbol) Unused() []Symbol {
	var out []Symbol
	s.Walk(func(c Symbol) bool {
		switch c.Kind() {
		case KindConstant, KindFunction, KindWorkbench, KindModule:
			if !c.IsUsed() && c.Definition().Src.Filename != "" {
				out = append(out, c)
			}
		}
		return c.Kind() != KindBuiltin
	})
	return out
}
