package ident

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// String serializes the name into its canonical dotted form.
func (n QualifiedName) String() string {
	if len(n) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, id := range n {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(id.Name)
	}
	return sb.String()
}

// Equal compares two names segment by segment.
func (n QualifiedName) Equal(other QualifiedName) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if !n[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the name has no segments.
func (n QualifiedName) IsEmpty() bool {
	return len(n) == 0
}

// IsSingle returns true if the name consists of exactly one identifier.
func (n QualifiedName) IsSingle() bool {
	return len(n) == 1
}

// First returns the first identifier.
func (n QualifiedName) First() (Identifier, bool) {
	if len(n) == 0 {
		return Identifier{}, false
	}
	return n[0], true
}

// Last returns the last identifier.
func (n QualifiedName) Last() (Identifier, bool) {
	if len(n) == 0 {
		return Identifier{}, false
	}
	return n[len(n)-1], true
}

// RemoveFirst returns the name without its first identifier.
func (n QualifiedName) RemoveFirst() QualifiedName {
	if len(n) == 0 {
		return nil
	}
	return append(QualifiedName(nil), n[1:]...)
}

// SplitFirst returns the first identifier and the remainder.
func (n QualifiedName) SplitFirst() (Identifier, QualifiedName) {
	first, _ := n.First()
	return first, n.RemoveFirst()
}

// WithPrefix returns prefix followed by n. Neither input is modified.
func (n QualifiedName) WithPrefix(prefix QualifiedName) QualifiedName {
	out := make(QualifiedName, 0, len(prefix)+len(n))
	out = append(out, prefix...)
	return append(out, n...)
}

// WithSuffix returns n followed by id. n is not modified.
func (n QualifiedName) WithSuffix(id Identifier) QualifiedName {
	out := make(QualifiedName, 0, len(n)+1)
	out = append(out, n...)
	return append(out, id)
}

// IsSubOf returns true if namespace is a prefix of n. Every name is a sub
// of itself.
func (n QualifiedName) IsSubOf(namespace QualifiedName) bool {
	if len(namespace) > len(n) {
		return false
	}
	for i := range namespace {
		if !n[i].Equal(namespace[i]) {
			return false
		}
	}
	return true
}

// Range spans the source ranges of the first and the last identifier.
func (n QualifiedName) Range() hcl.Range {
	if len(n) == 0 {
		return hcl.Range{}
	}
	first, last := n[0].Src, n[len(n)-1].Src
	if !n[0].HasSrc() {
		return last
	}
	if !n[len(n)-1].HasSrc() {
		return first
	}
	return hcl.RangeBetween(first, last)
}
