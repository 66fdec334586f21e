package symbol

import (
	"context"

	"github.com/specialistvlad/hclcad/internal/ctxlog"
	"github.com/specialistvlad/hclcad/internal/diag"
	"github.com/specialistvlad/hclcad/internal/ident"
)

// Loader makes symbols from outside the table available on demand, e.g. by
// parsing an external source file and mounting it. Load reports whether
// anything was added.
type Loader interface {
	Load(ctx context.Context, name ident.QualifiedName) (bool, error)
}

// link is a pending Alias or UseAll entry.
type link struct {
	owner Handle
	node  Handle
}

// pendingLinks collects the unresolved entries below h, children before
// their parents.
func (t *Table) pendingLinks(h Handle, out []link) []link {
	n := t.node(h)
	for _, e := range n.children {
		c := t.node(e.handle)
		if c.parent == h && c.def.Kind.IsModuleLike() {
			out = t.pendingLinks(e.handle, out)
		}
	}
	for _, e := range n.children {
		c := t.node(e.handle)
		if c.parent == h && c.def.IsLink() {
			out = append(out, link{owner: h, node: e.handle})
		}
	}
	return out
}

func (t *Table) hasPendingLinks(h Handle) bool {
	for _, e := range t.node(h).children {
		c := t.node(e.handle)
		if c.parent == h && c.def.IsLink() {
			return true
		}
	}
	return false
}

// Resolve replaces every Alias and UseAll entry reachable from the root by
// the symbols they denote. It repeats until a pass makes no progress. A
// wildcard import waits until its target is resolved itself; when nothing
// else moves, the remaining ones are resolved as far as possible anyway.
// Problems are recorded in sink and the offending entries dropped.
func (t *Table) Resolve(ctx context.Context, sink *diag.Sink, loader Loader) {
	logger := ctxlog.FromContext(ctx)
	if t.root == NoHandle {
		return
	}

	force := false
	for pass := 1; ; pass++ {
		links := t.pendingLinks(t.root, nil)
		if len(links) == 0 {
			logger.Debug("Symbol resolution complete.", "passes", pass)
			return
		}

		progress := false
		for _, l := range links {
			done, err := t.resolveLink(ctx, l, loader, force)
			if err != nil {
				sink.Error(t.node(l.node).def.Src, err)
				t.drop(l)
				progress = true
				continue
			}
			progress = progress || done
		}

		switch {
		case progress:
			force = false
		case !force:
			logger.Debug("Symbol resolution stalled, forcing wildcard imports.", "pending", len(links))
			force = true
		default:
			for _, l := range links {
				def := t.node(l.node).def
				sink.Error(def.Src, &SymbolNotFoundError{Name: def.Target})
				t.drop(l)
			}
			return
		}
	}
}

func (t *Table) drop(l link) {
	n := t.node(l.node)
	t.remove(l.owner, n.def.ID.Name)
	n.parent = NoHandle
}

func (t *Table) resolveLink(ctx context.Context, l link, loader Loader, force bool) (bool, error) {
	def := t.node(l.node).def
	owner := t.Symbol(l.owner)

	target, err := t.lookupTarget(ctx, owner, def.Target, loader)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if def.Kind == KindAlias {
		t.replace(l, target)
		return true, nil
	}

	if !force && t.hasPendingLinks(target.handle) {
		return false, nil
	}
	vis := t.entryVisibility(l)
	t.drop(l)
	logger := ctxlog.FromContext(ctx)
	for _, c := range target.PublicChildren(vis) {
		if existing, ok := owner.Child(c.ID()); ok {
			// Wildcard imports never replace names already present.
			if !existing.Same(c) {
				logger.Debug("Wildcard import shadowed.", "name", c.ID().Name, "namespace", owner.String())
			}
			continue
		}
		if err := t.Link(owner, c.ID(), c); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (t *Table) entryVisibility(l link) Visibility {
	n := t.node(l.owner)
	if i := n.find(t.node(l.node).def.ID.Name); i >= 0 {
		return n.children[i].vis
	}
	return t.node(l.node).vis
}

// replace swaps an alias entry for target, keeping the entry's name and
// visibility.
func (t *Table) replace(l link, target Symbol) {
	owner := t.node(l.owner)
	alias := t.node(l.node)
	if i := owner.find(alias.def.ID.Name); i >= 0 {
		owner.children[i].handle = target.handle
	}
	alias.parent = NoHandle
}

// lookupTarget finds name relative to owner, then globally, then through
// the loader.
func (t *Table) lookupTarget(ctx context.Context, owner Symbol, name ident.QualifiedName, loader Loader) (Symbol, error) {
	found, err := t.lookupFrom(owner, name, make(map[Handle]bool))
	if err == nil || !IsNotFound(err) || loader == nil {
		return found, err
	}
	loaded, lerr := loader.Load(ctx, name)
	if lerr != nil {
		return Symbol{}, lerr
	}
	if !loaded {
		return Symbol{}, err
	}
	return t.lookupFrom(owner, name, make(map[Handle]bool))
}
