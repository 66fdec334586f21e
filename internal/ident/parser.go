package ident

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single name segment.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValid reports whether s can be used as a single identifier.
func IsValid(s string) bool {
	return segmentRegex.MatchString(s)
}

// Parse creates a qualified name from its string representation. Both `.`
// and `::` are accepted as separators.
func Parse(raw string) (QualifiedName, error) {
	if raw == "" {
		return nil, fmt.Errorf("qualified name cannot be empty")
	}

	normalized := strings.ReplaceAll(raw, "::", ".")
	var name QualifiedName
	for _, segment := range strings.Split(normalized, ".") {
		if segment == "" {
			return nil, fmt.Errorf("qualified name %q contains an empty segment", raw)
		}
		if !IsValid(segment) {
			return nil, fmt.Errorf("invalid identifier %q in %q", segment, raw)
		}
		name = append(name, New(segment))
	}
	return name, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// names spelled out in Go code, e.g. builtin registrations.
func MustParse(raw string) QualifiedName {
	name, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return name
}
