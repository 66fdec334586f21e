// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclcad/internal/value"
)

// Kind classifies a model node.
type Kind int

const (
	KindGroup Kind = iota
	KindWorkpiece
	KindPrimitive
)

func (k Kind) String() string {
	switch k {
	case KindWorkpiece:
		return "workpiece"
	case KindPrimitive:
		return "primitive"
	}
	return "group"
}

// Handle addresses a node of a Tree.
type Handle int

// NoHandle is the parent of root nodes.
const NoHandle Handle = -1

// Node is a single model.
type Node struct {
	Kind Kind
	// Name is the builtin or workbench name, e.g. `circle`.
	Name       string
	Args       []value.NamedValue
	Props      []value.NamedValue
	Attributes []value.NamedValue
	Children   []Handle
	Parent     Handle
	Origin     hcl.Range
}

// Tree is an arena of nodes.
type Tree struct {
	nodes []*Node
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// New adds a detached node.
func (t *Tree) New(kind Kind, name string, origin hcl.Range) Handle {
	t.nodes = append(t.nodes, &Node{Kind: kind, Name: name, Parent: NoHandle, Origin: origin})
	return Handle(len(t.nodes) - 1)
}

// Node returns the node addressed by h. It panics on a foreign handle.
func (t *Tree) Node(h Handle) *Node {
	if h < 0 || int(h) >= len(t.nodes) {
		panic(fmt.Sprintf("model: invalid handle %d", h))
	}
	return t.nodes[h]
}

func (t *Tree) Len() int { return len(t.nodes) }

// AddChild appends child to parent, detaching it from its previous parent.
func (t *Tree) AddChild(parent, child Handle) error {
	if parent == child || t.isAncestor(child, parent) {
		return fmt.Errorf("model %d cannot become a child of its own descendant %d", child, parent)
	}
	c := t.Node(child)
	if c.Parent != NoHandle {
		old := t.Node(c.Parent)
		for i, h := range old.Children {
			if h == child {
				old.Children = append(old.Children[:i:i], old.Children[i+1:]...)
				break
			}
		}
	}
	c.Parent = parent
	p := t.Node(parent)
	p.Children = append(p.Children, child)
	return nil
}

// isAncestor reports whether a is an ancestor of h.
func (t *Tree) isAncestor(a, h Handle) bool {
	for p := t.Node(h).Parent; p != NoHandle; p = t.Node(p).Parent {
		if p == a {
			return true
		}
	}
	return false
}

func set(list []value.NamedValue, name string, v value.Value) []value.NamedValue {
	for i := range list {
		if list[i].Name == name {
			list[i].Value = v
			return list
		}
	}
	return append(list, value.NamedValue{Name: name, Value: v})
}

func get(list []value.NamedValue, name string) (value.Value, bool) {
	for _, nv := range list {
		if nv.Name == name {
			return nv.Value, true
		}
	}
	return value.None(), false
}

// SetProp sets a property, replacing an earlier one of the same name.
func (t *Tree) SetProp(h Handle, name string, v value.Value) {
	n := t.Node(h)
	n.Props = set(n.Props, name, v)
}

// Prop returns a property of h. Workpieces expose their arguments as
// properties too; explicit properties win.
func (t *Tree) Prop(h Handle, name string) (value.Value, bool) {
	n := t.Node(h)
	if v, ok := get(n.Props, name); ok {
		return v, true
	}
	return get(n.Args, name)
}

// SetAttribute sets an attribute, replacing an earlier one of the same name.
func (t *Tree) SetAttribute(h Handle, name string, v value.Value) {
	n := t.Node(h)
	n.Attributes = set(n.Attributes, name, v)
}

// ValueOf wraps a handle into a Model value.
func ValueOf(h Handle) value.Value {
	return value.ModelRef(int(h))
}

// HandleOf extracts the handle from a Model value.
func HandleOf(v value.Value) (Handle, bool) {
	id, ok := v.ModelID()
	return Handle(id), ok
}

// Handles extracts the handles of a Model value or of a list of models.
// Other values yield nothing.
func Handles(v value.Value) []Handle {
	if h, ok := HandleOf(v); ok {
		return []Handle{h}
	}
	var out []Handle
	for _, item := range v.Items() {
		out = append(out, Handles(item)...)
	}
	return out
}
