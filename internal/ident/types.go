package ident

import (
	"github.com/hashicorp/hcl/v2"
)

// Identifier is a single name, e.g. `circle`.
type Identifier struct {
	Name string
	// Src is the zero range when the identifier was not read from source.
	Src hcl.Range
}

// New creates an identifier without a source range.
func New(name string) Identifier {
	return Identifier{Name: name}
}

// NewAt creates an identifier read from the given source range.
func NewAt(name string, rng hcl.Range) Identifier {
	return Identifier{Name: name, Src: rng}
}

// String returns the plain name.
func (id Identifier) String() string {
	return id.Name
}

// Equal compares names only.
func (id Identifier) Equal(other Identifier) bool {
	return id.Name == other.Name
}

// IsEmpty returns true for the anonymous identifier.
func (id Identifier) IsEmpty() bool {
	return id.Name == ""
}

// HasSrc returns true if the identifier carries a source range.
func (id Identifier) HasSrc() bool {
	return id.Src.Filename != "" || id.Src.End.Byte > 0
}

// QualifiedName is an ordered sequence of identifiers, e.g. `std.geo2d.circle`.
type QualifiedName []Identifier

// FromID creates a single-segment qualified name.
func FromID(id Identifier) QualifiedName {
	return QualifiedName{id}
}

// FromStrings creates a qualified name from plain segment names.
func FromStrings(segments ...string) QualifiedName {
	name := make(QualifiedName, 0, len(segments))
	for _, s := range segments {
		name = append(name, New(s))
	}
	return name
}
